package blocks

// Weight classifies a block's typographic treatment.
type Weight string

const (
	// WeightHeadline marks opening blocks and blocks with numeric or
	// proper-noun emphasis.
	WeightHeadline Weight = "headline"
	// WeightSupport marks plain explanatory blocks.
	WeightSupport Weight = "support"
	// WeightPunch marks short, high-impact blocks.
	WeightPunch Weight = "punch"
)

// Block is one or two display lines with timing inherited from its source
// items. SourceIndices lists the contributing transcript segment or phrase
// indices; together the blocks of a sequence partition the input exactly.
type Block struct {
	Lines         []string `json:"lines"`
	Weight        Weight   `json:"weight"`
	SourceIndices []int    `json:"source_indices"`
	Start         float64  `json:"start_seconds"`
	End           float64  `json:"end_seconds"`
}

// Text returns the block's lines joined with a space.
func (b Block) Text() string {
	if len(b.Lines) == 1 {
		return b.Lines[0]
	}
	text := ""
	for i, line := range b.Lines {
		if i > 0 {
			text += " "
		}
		text += line
	}
	return text
}

// Duration returns the block's span in seconds.
func (b Block) Duration() float64 {
	return b.End - b.Start
}
