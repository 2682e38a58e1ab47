package blocks

import (
	"strings"

	"cueplan/internal/script"
	"cueplan/internal/transcript"
)

// Options controls grouping and merging. Zero values fall back to defaults.
type Options struct {
	// MaxJoinGapSeconds is the largest silence between two segments that
	// still allows joining them into one 2-line block. Default 0.6.
	MaxJoinGapSeconds float64
	// MaxJoinWords is the per-segment word ceiling for joining. Default 7.
	MaxJoinWords int
	// MaxJoinChars is the combined character ceiling for joining. Default 90.
	MaxJoinChars int
	// MinBlockSeconds is the minimum standalone block span; shorter blocks
	// fold into their predecessor when it still has a free line. Default 0.6
	// (18 frames at 30 fps).
	MinBlockSeconds float64
}

const (
	defaultMaxJoinGapSeconds = 0.6
	defaultMaxJoinWords      = 7
	defaultMaxJoinChars      = 90
	defaultMinBlockSeconds   = 0.6
)

func (o Options) withDefaults() Options {
	if o.MaxJoinGapSeconds <= 0 {
		o.MaxJoinGapSeconds = defaultMaxJoinGapSeconds
	}
	if o.MaxJoinWords <= 0 {
		o.MaxJoinWords = defaultMaxJoinWords
	}
	if o.MaxJoinChars <= 0 {
		o.MaxJoinChars = defaultMaxJoinChars
	}
	if o.MinBlockSeconds <= 0 {
		o.MinBlockSeconds = defaultMinBlockSeconds
	}
	return o
}

// FromTranscript builds editorial blocks from ordered, non-overlapping
// transcript segments: pairwise grouping of short adjacent segments, weight
// classification, then the minimum-duration merge pass. The blocks cover the
// full input without gaps in source coverage.
func FromTranscript(segments []transcript.Segment, opts Options) []Block {
	opts = opts.withDefaults()
	if len(segments) == 0 {
		return nil
	}
	grouped := groupSegments(segments, opts)
	classify(grouped)
	return enforceMinDuration(grouped, opts.MinBlockSeconds)
}

// FromPhrases is the no-transcript fallback: one block per phrase, no
// grouping and no duration pass (phrases carry no real timing), with the
// same weight classification applied.
func FromPhrases(phrases []script.Phrase) []Block {
	if len(phrases) == 0 {
		return nil
	}
	out := make([]Block, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, Block{
			Lines:         []string{p.Text},
			Weight:        WeightSupport,
			SourceIndices: []int{p.Index},
		})
	}
	classify(out)
	return out
}

// groupSegments walks segments left to right, combining the current segment
// with the next into one 2-line block when the gap, word, and character
// limits all hold. It never looks more than one segment ahead.
func groupSegments(segments []transcript.Segment, opts Options) []Block {
	var out []Block
	for i := 0; i < len(segments); i++ {
		cur := segments[i]
		if i+1 < len(segments) {
			next := segments[i+1]
			if canJoin(cur, next, opts) {
				out = append(out, Block{
					Lines:         []string{cur.Text, next.Text},
					Weight:        WeightSupport,
					SourceIndices: []int{i, i + 1},
					Start:         cur.Start,
					End:           next.End,
				})
				i++
				continue
			}
		}
		out = append(out, Block{
			Lines:         []string{cur.Text},
			Weight:        WeightSupport,
			SourceIndices: []int{i},
			Start:         cur.Start,
			End:           cur.End,
		})
	}
	return out
}

func canJoin(cur, next transcript.Segment, opts Options) bool {
	gap := next.Start - cur.End
	if gap > opts.MaxJoinGapSeconds {
		return false
	}
	if wordCount(cur.Text) > opts.MaxJoinWords || wordCount(next.Text) > opts.MaxJoinWords {
		return false
	}
	return runeLen(cur.Text)+runeLen(next.Text) <= opts.MaxJoinChars
}

// enforceMinDuration folds sub-minimum blocks into their predecessor when
// both sides still have a single line, extending the predecessor's end time.
// The output list is append-only; merging pops and rebuilds the last entry
// instead of mutating through a reference.
func enforceMinDuration(in []Block, minSeconds float64) []Block {
	out := make([]Block, 0, len(in))
	for _, b := range in {
		if len(out) > 0 && b.Duration() < minSeconds {
			prev := out[len(out)-1]
			if len(prev.Lines) < 2 && len(b.Lines) == 1 {
				merged := prev
				merged.Lines = append(append([]string(nil), prev.Lines...), b.Lines...)
				merged.SourceIndices = append(append([]int(nil), prev.SourceIndices...), b.SourceIndices...)
				merged.End = b.End
				out[len(out)-1] = merged
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func runeLen(s string) int {
	return len([]rune(s))
}
