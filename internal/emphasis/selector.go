package emphasis

import (
	"math"

	"cueplan/internal/blocks"
)

// Level is the emphasis treatment requested from the renderer.
type Level string

const (
	LevelHard Level = "hard"
	LevelSoft Level = "soft"
	LevelNone Level = "none"
)

// Assignment labels one block. Reason is diagnostic metadata only; nothing
// downstream branches on it.
type Assignment struct {
	BlockIndex int    `json:"block_index"`
	Level      Level  `json:"level"`
	Reason     string `json:"reason,omitempty"`
}

// minBlocksForEmphasis is the sequence length below which everything stays
// none: short videos read better without extra treatment.
const minBlocksForEmphasis = 4

// maxAssignments caps hard+soft emphasis across the whole sequence.
const maxAssignments = 3

// Select produces exactly one assignment per block, in block order.
//
// The hard pick is the punch block (first and last excluded) closest to the
// mid-center of the index range; ties keep scan order. Soft candidates are
// the setup block immediately before the hard pick (when it reads headline
// or support) and the first headline strictly inside the first half of the
// sequence, skipping the two opening blocks and the setup block itself.
func Select(bs []blocks.Block) []Assignment {
	out := make([]Assignment, len(bs))
	for i := range out {
		out[i] = Assignment{BlockIndex: i, Level: LevelNone}
	}
	n := len(bs)
	if n < minBlocksForEmphasis {
		return out
	}

	hard := selectHard(bs)
	total := 0
	if hard >= 0 {
		out[hard] = Assignment{BlockIndex: hard, Level: LevelHard, Reason: "punch nearest mid-center"}
		total++
	}

	for _, soft := range softCandidates(bs, hard) {
		if total >= maxAssignments {
			break
		}
		out[soft.BlockIndex] = soft
		total++
	}
	return out
}

func selectHard(bs []blocks.Block) int {
	n := len(bs)
	midCenter := (0.33*float64(n) + 0.66*float64(n)) / 2

	best := -1
	bestDistance := math.MaxFloat64
	for i := 1; i < n-1; i++ {
		if bs[i].Weight != blocks.WeightPunch {
			continue
		}
		distance := math.Abs(float64(i) - midCenter)
		if distance < bestDistance {
			bestDistance = distance
			best = i
		}
	}
	return best
}

func softCandidates(bs []blocks.Block, hard int) []Assignment {
	var out []Assignment

	setup := -1
	if hard > 0 {
		prev := hard - 1
		if w := bs[prev].Weight; w == blocks.WeightHeadline || w == blocks.WeightSupport {
			setup = prev
			out = append(out, Assignment{BlockIndex: prev, Level: LevelSoft, Reason: "setup before hard"})
		}
	}

	half := float64(len(bs)) / 2
	for i := 2; float64(i) < half; i++ {
		if i == setup || bs[i].Weight != blocks.WeightHeadline {
			continue
		}
		out = append(out, Assignment{BlockIndex: i, Level: LevelSoft, Reason: "early headline"})
		break
	}
	return out
}
