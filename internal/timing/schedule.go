package timing

import (
	"math"
	"sort"

	"cueplan/internal/blocks"
)

// Options controls fade and speech-tracking adjustments. Zero values fall
// back to defaults.
type Options struct {
	// FadeSeconds is the fade-in and fade-out window length. Default 0.5.
	FadeSeconds float64
	// LeadSeconds pulls a timestamped item's appearance earlier than its
	// transcript start so text tracks speech naturally. Default 0.2.
	LeadSeconds float64
	// LagSeconds holds a timestamped item past its transcript end.
	// Default 0.15.
	LagSeconds float64
}

const (
	defaultFadeSeconds = 0.5
	defaultLeadSeconds = 0.2
	defaultLagSeconds  = 0.15
)

func (o Options) withDefaults() Options {
	if o.FadeSeconds <= 0 {
		o.FadeSeconds = defaultFadeSeconds
	}
	if o.LeadSeconds <= 0 {
		o.LeadSeconds = defaultLeadSeconds
	}
	if o.LagSeconds <= 0 {
		o.LagSeconds = defaultLagSeconds
	}
	return o
}

type cue struct {
	start float64
	end   float64
}

// Schedule is a precomputed display plan over one scene. It is not safe for
// concurrent use: the cursor belongs to the single render loop walking it.
type Schedule struct {
	cues   []cue
	fade   float64
	cursor int
}

// Sample is the answer to one timing query.
type Sample struct {
	// Index of the active item; -1 when the schedule is empty.
	Index int
	// Start is the instant the active item appears (lead-adjusted when the
	// schedule was built from transcript timing).
	Start float64
	// Opacity is the fade value in [0,1].
	Opacity float64
}

// NewUniform divides totalDuration evenly across count items. Used when no
// real timestamps exist; no lead or lag is applied.
func NewUniform(count int, totalDuration float64, opts Options) *Schedule {
	opts = opts.withDefaults()
	s := &Schedule{fade: opts.FadeSeconds}
	if count <= 0 || totalDuration <= 0 {
		return s
	}
	slice := totalDuration / float64(count)
	s.cues = make([]cue, count)
	for i := 0; i < count; i++ {
		s.cues[i] = cue{start: float64(i) * slice, end: float64(i+1) * slice}
	}
	return s
}

// NewFromBlocks builds a timestamp-driven schedule: each block's interval is
// widened by the lead/lag adjustments and queries resolve against the
// adjusted intervals.
func NewFromBlocks(bs []blocks.Block, opts Options) *Schedule {
	opts = opts.withDefaults()
	s := &Schedule{fade: opts.FadeSeconds, cues: make([]cue, 0, len(bs))}
	for _, b := range bs {
		start := b.Start - opts.LeadSeconds
		if start < 0 {
			start = 0
		}
		s.cues = append(s.cues, cue{start: start, end: b.End + opts.LagSeconds})
	}
	return s
}

// Len returns the number of scheduled items.
func (s *Schedule) Len() int {
	return len(s.cues)
}

// At returns the active item at the given instant (seconds from scene
// start). Instants before the first item clamp to index 0; instants at or
// past the last item's end clamp to the last index. Opacity is always in
// [0,1].
func (s *Schedule) At(seconds float64) Sample {
	if len(s.cues) == 0 {
		return Sample{Index: -1}
	}

	i := s.cursor
	if i < 0 || i >= len(s.cues) || !s.contains(i, seconds) {
		i = sort.Search(len(s.cues), func(j int) bool {
			return s.cues[j].start > seconds
		}) - 1
		if i < 0 {
			i = 0
		}
	}
	s.cursor = i

	c := s.cues[i]
	return Sample{Index: i, Start: c.start, Opacity: s.opacity(c, seconds)}
}

// AtFrame resolves a frame number against the schedule.
func (s *Schedule) AtFrame(frame int, frameRate float64) Sample {
	if frameRate <= 0 {
		return Sample{Index: -1}
	}
	return s.At(float64(frame) / frameRate)
}

func (s *Schedule) contains(i int, seconds float64) bool {
	if seconds < s.cues[i].start {
		return i == 0
	}
	if i+1 < len(s.cues) {
		return seconds < s.cues[i+1].start
	}
	return true
}

// opacity ramps 0→1→0 across the fade windows inside the item's own
// (adjusted) interval, clamped to [0,1].
func (s *Schedule) opacity(c cue, seconds float64) float64 {
	if seconds <= c.start || seconds >= c.end {
		return 0
	}
	in := (seconds - c.start) / s.fade
	out := (c.end - seconds) / s.fade
	value := math.Min(1, math.Min(in, out))
	if value < 0 {
		return 0
	}
	return value
}
