package plan

import (
	"time"

	"cueplan/internal/blocks"
	"cueplan/internal/boundaries"
	"cueplan/internal/emphasis"
	"cueplan/internal/script"
	"cueplan/internal/timing"
)

// Source identifies which timing path produced the plan.
type Source string

const (
	// SourceTranscript means blocks carry real speech timestamps.
	SourceTranscript Source = "transcript"
	// SourcePhrases is the no-transcript fallback with uniform timing.
	SourcePhrases Source = "phrases"
)

// Plan is one complete render plan for a single video.
type Plan struct {
	RunID        string                `json:"run_id"`
	CreatedAt    time.Time             `json:"created_at"`
	Source       Source                `json:"source"`
	TotalSeconds float64               `json:"total_seconds"`
	Script       script.Narration      `json:"script"`
	Phrases      []script.Phrase       `json:"phrases,omitempty"`
	Blocks       []blocks.Block        `json:"blocks"`
	Boundary     *boundaries.Boundary  `json:"boundary,omitempty"`
	Emphasis     []emphasis.Assignment `json:"emphasis"`
}

// Schedule derives the per-frame timing schedule for this plan: timestamp
// driven when the plan came from a transcript, uniform otherwise. Build it
// once per render loop; the schedule keeps its own cursor.
func (p *Plan) Schedule(opts timing.Options) *timing.Schedule {
	if p.Source == SourceTranscript {
		return timing.NewFromBlocks(p.Blocks, opts)
	}
	return timing.NewUniform(len(p.Blocks), p.TotalSeconds, opts)
}

// UniformThirds is the caller-side fallback for a nil topic boundary: even
// cuts at one third and two thirds of the duration.
func UniformThirds(totalDuration float64) boundaries.Boundary {
	return boundaries.Boundary{
		Cut1: totalDuration / 3,
		Cut2: 2 * totalDuration / 3,
	}
}
