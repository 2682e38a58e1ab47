package blocks

import (
	"strings"
	"unicode"
)

// classify assigns typographic weights in place across the whole sequence.
//
// Terminal `?`/`!` and the final block always read as punch. The opening
// two blocks, digits, and interior proper nouns read as headline before the
// short-line punch rule is considered; otherwise a short opening line such
// as "Version 4.2 arrived." would read as punch instead of headline.
func classify(bs []Block) {
	for i := range bs {
		bs[i].Weight = classifyWeight(bs[i], i, len(bs))
	}
}

func classifyWeight(b Block, index, count int) Weight {
	lastLine := strings.TrimSpace(b.Lines[len(b.Lines)-1])
	if index == count-1 || strings.HasSuffix(lastLine, "?") || strings.HasSuffix(lastLine, "!") {
		return WeightPunch
	}

	firstLine := b.Lines[0]
	if index <= 1 || containsDigit(firstLine) || hasInteriorProperNoun(firstLine) {
		return WeightHeadline
	}

	if len(b.Lines) == 1 && wordCount(firstLine) <= 4 {
		return WeightPunch
	}
	return WeightSupport
}

func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// hasInteriorProperNoun reports whether the line contains a capitalized
// token after the first word that is not immediately preceded by
// sentence-ending punctuation. Rough proper-noun heuristic.
func hasInteriorProperNoun(line string) bool {
	tokens := strings.Fields(line)
	for i := 1; i < len(tokens); i++ {
		first, _ := firstLetter(tokens[i])
		if first == 0 || !unicode.IsUpper(first) {
			continue
		}
		prev := tokens[i-1]
		if strings.HasSuffix(prev, ".") || strings.HasSuffix(prev, "!") || strings.HasSuffix(prev, "?") {
			continue
		}
		return true
	}
	return false
}

func firstLetter(token string) (rune, bool) {
	for _, r := range token {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}
