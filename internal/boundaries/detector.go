package boundaries

import (
	"math"

	"cueplan/internal/script"
	"cueplan/internal/textutil"
)

// Boundary is a pair of scene-cut timestamps splitting a video into exactly
// three image segments: 0→Cut1, Cut1→Cut2, Cut2→total duration.
type Boundary struct {
	Cut1 float64 `json:"cut1"`
	Cut2 float64 `json:"cut2"`
}

// Options tunes the detector. Zero values fall back to defaults.
type Options struct {
	// ToleranceRatio is the marker tolerance as a fraction of the total
	// duration. Default 0.15.
	ToleranceRatio float64
	// MinSegmentSeconds is the minimum length of each resulting segment.
	// Default 8.
	MinSegmentSeconds float64
	// MinMatchScore is the minimum acceptable weighted match score.
	// Default 0.3.
	MinMatchScore float64
	// QuantizeStepSeconds is the boundary quantization step. Default 1.
	QuantizeStepSeconds float64
}

const (
	defaultToleranceRatio      = 0.15
	defaultMinSegmentSeconds   = 8.0
	defaultMinMatchScore       = 0.3
	defaultQuantizeStepSeconds = 1.0
)

func (o Options) withDefaults() Options {
	if o.ToleranceRatio <= 0 {
		o.ToleranceRatio = defaultToleranceRatio
	}
	if o.MinSegmentSeconds <= 0 {
		o.MinSegmentSeconds = defaultMinSegmentSeconds
	}
	if o.MinMatchScore <= 0 {
		o.MinMatchScore = defaultMinMatchScore
	}
	if o.QuantizeStepSeconds <= 0 {
		o.QuantizeStepSeconds = defaultQuantizeStepSeconds
	}
	return o
}

// Detect scans the concatenated script for transition cues and picks two cut
// timestamps near the one-third and two-thirds marks. It returns nil when no
// confident cut pair exists; callers fall back to uniform thirds.
func Detect(ns script.Narration, totalDuration float64, opts Options) *Boundary {
	opts = opts.withDefaults()

	if totalDuration < 3*opts.MinSegmentSeconds {
		return nil
	}

	folded := textutil.Fold(ns.Joined())
	if folded == "" {
		return nil
	}
	matches := scanCues(folded)
	if len(matches) == 0 {
		return nil
	}

	textLength := float64(len(folded))
	tolerance := opts.ToleranceRatio * totalDuration
	targets := [2]float64{totalDuration / 3, 2 * totalDuration / 3}

	var cuts [2]float64
	for i, target := range targets {
		best := -1
		bestScore := 0.0
		for j, m := range matches {
			estimate := float64(m.offset) / textLength * totalDuration
			distance := math.Abs(estimate - target)
			if distance > tolerance {
				continue
			}
			score := m.weight * (1 - distance/tolerance)
			if score < opts.MinMatchScore {
				continue
			}
			if score > bestScore {
				bestScore = score
				best = j
			}
		}
		if best < 0 {
			return nil
		}

		estimate := float64(matches[best].offset) / textLength * totalDuration
		cut := math.Round(estimate/opts.QuantizeStepSeconds) * opts.QuantizeStepSeconds
		cut = math.Max(cut, opts.MinSegmentSeconds)
		cut = math.Min(cut, totalDuration-opts.MinSegmentSeconds)
		cuts[i] = cut
	}

	if cuts[0] < opts.MinSegmentSeconds ||
		cuts[1]-cuts[0] < opts.MinSegmentSeconds ||
		totalDuration-cuts[1] < opts.MinSegmentSeconds {
		return nil
	}
	return &Boundary{Cut1: cuts[0], Cut2: cuts[1]}
}
