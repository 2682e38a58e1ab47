package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Segment is one spoken phrase with coarse timing from the speech-to-text
// service. Start and End are seconds from the start of the audio.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the segment span in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

type payload struct {
	Segments []Segment `json:"segments"`
}

// Parse decodes transcript JSON. Both the WhisperX payload shape
// ({"segments": [...]}) and a bare segment array are accepted. Segment text
// is whitespace-trimmed; empty segments are dropped.
func Parse(data []byte) ([]Segment, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil || p.Segments == nil {
		var bare []Segment
		if bareErr := json.Unmarshal(data, &bare); bareErr != nil {
			if err == nil {
				err = bareErr
			}
			return nil, fmt.Errorf("parse transcript json: %w", err)
		}
		p.Segments = bare
	}

	out := make([]Segment, 0, len(p.Segments))
	for _, seg := range p.Segments {
		seg.Text = strings.TrimSpace(seg.Text)
		if seg.Text == "" {
			continue
		}
		out = append(out, seg)
	}
	return out, nil
}

// LoadFile reads and parses a transcript JSON file.
func LoadFile(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(data)
}

// Validate checks the ordering precondition the engine relies on: every
// segment has positive duration, and segments are sorted by start time with
// no overlap.
func Validate(segments []Segment) error {
	for i, seg := range segments {
		if seg.Start < 0 {
			return fmt.Errorf("segment %d starts at %.3fs (negative)", i, seg.Start)
		}
		if seg.End <= seg.Start {
			return fmt.Errorf("segment %d has non-positive duration (%.3fs → %.3fs)", i, seg.Start, seg.End)
		}
		if i > 0 && seg.Start < segments[i-1].End {
			return fmt.Errorf("segment %d starts at %.3fs before segment %d ends at %.3fs", i, seg.Start, i-1, segments[i-1].End)
		}
	}
	return nil
}

// TotalDuration returns the end time of the last segment, or 0 for an empty
// transcript.
func TotalDuration(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].End
}
