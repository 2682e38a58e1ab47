package emphasis

import (
	"testing"

	"cueplan/internal/blocks"
)

func sequence(weights ...blocks.Weight) []blocks.Block {
	bs := make([]blocks.Block, len(weights))
	for i, w := range weights {
		bs[i] = blocks.Block{Lines: []string{"line"}, Weight: w}
	}
	return bs
}

func countLevels(t *testing.T, as []Assignment) (hard, soft int) {
	t.Helper()
	for i, a := range as {
		if a.BlockIndex != i {
			t.Fatalf("assignment %d has block index %d", i, a.BlockIndex)
		}
		switch a.Level {
		case LevelHard:
			hard++
		case LevelSoft:
			soft++
		case LevelNone:
		default:
			t.Fatalf("unknown level %q", a.Level)
		}
	}
	return hard, soft
}

func TestSelectShortSequencesGetNoEmphasis(t *testing.T) {
	as := Select(sequence(blocks.WeightPunch, blocks.WeightPunch, blocks.WeightPunch))
	if len(as) != 3 {
		t.Fatalf("expected one assignment per block, got %d", len(as))
	}
	hard, soft := countLevels(t, as)
	if hard != 0 || soft != 0 {
		t.Fatalf("fewer than 4 blocks must stay none, got hard=%d soft=%d", hard, soft)
	}
}

func TestSelectHardPickNearMidCenter(t *testing.T) {
	as := Select(sequence(
		blocks.WeightHeadline, // 0
		blocks.WeightHeadline, // 1
		blocks.WeightSupport,  // 2
		blocks.WeightPunch,    // 3: closest punch to mid-center 3.96
		blocks.WeightSupport,  // 4
		blocks.WeightPunch,    // 5
		blocks.WeightSupport,  // 6
		blocks.WeightPunch,    // 7: last block, excluded
	))

	if as[3].Level != LevelHard {
		t.Fatalf("expected hard at index 3, got %+v", as)
	}
	if as[2].Level != LevelSoft {
		t.Fatalf("expected the setup block before the hard pick to go soft, got %+v", as[2])
	}
	if as[5].Level != LevelNone || as[7].Level != LevelNone {
		t.Fatalf("only one hard assignment is ever made: %+v", as)
	}
	hard, soft := countLevels(t, as)
	if hard != 1 || soft != 1 {
		t.Fatalf("expected hard=1 soft=1, got hard=%d soft=%d", hard, soft)
	}
}

func TestSelectAddsEarlyHeadlineSoft(t *testing.T) {
	as := Select(sequence(
		blocks.WeightHeadline, // 0: skipped (natural opening)
		blocks.WeightHeadline, // 1: skipped (natural opening)
		blocks.WeightHeadline, // 2: first headline inside the first half
		blocks.WeightSupport,  // 3: setup before hard
		blocks.WeightPunch,    // 4: hard
		blocks.WeightSupport,  // 5
		blocks.WeightSupport,  // 6
		blocks.WeightSupport,  // 7
		blocks.WeightSupport,  // 8
		blocks.WeightPunch,    // 9: last, excluded
	))

	if as[4].Level != LevelHard {
		t.Fatalf("expected hard at index 4, got %+v", as)
	}
	if as[3].Level != LevelSoft || as[2].Level != LevelSoft {
		t.Fatalf("expected soft at indexes 3 (setup) and 2 (early headline), got %+v", as)
	}
	hard, soft := countLevels(t, as)
	if hard+soft != 3 {
		t.Fatalf("hard+soft must cap at 3, got %d", hard+soft)
	}
}

func TestSelectNoInteriorPunchMeansNoHard(t *testing.T) {
	as := Select(sequence(
		blocks.WeightPunch,   // first block never carries hard
		blocks.WeightSupport,
		blocks.WeightSupport,
		blocks.WeightPunch, // last block never carries hard
	))
	hard, soft := countLevels(t, as)
	if hard != 0 {
		t.Fatalf("expected no hard assignment, got %d", hard)
	}
	if soft != 0 {
		t.Fatalf("expected no soft assignment without qualifying candidates, got %d", soft)
	}
}

func TestSelectBounds(t *testing.T) {
	// A punch-heavy sequence still yields at most one hard and three total.
	weights := make([]blocks.Weight, 12)
	for i := range weights {
		if i%2 == 0 {
			weights[i] = blocks.WeightPunch
		} else {
			weights[i] = blocks.WeightHeadline
		}
	}
	as := Select(sequence(weights...))
	hard, soft := countLevels(t, as)
	if hard > 1 {
		t.Fatalf("hard assignments must never exceed 1, got %d", hard)
	}
	if hard+soft > 3 {
		t.Fatalf("hard+soft must never exceed 3, got %d", hard+soft)
	}
}
