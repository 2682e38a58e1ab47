package script

import (
	"strings"
	"unicode"

	"cueplan/internal/textutil"
)

// SplitOptions controls phrase sizing. Zero values fall back to defaults.
type SplitOptions struct {
	// MaxCharsPerPhrase is the target upper bound on phrase length in runes.
	// Unsplittable long sentences may still exceed it. Default 48.
	MaxCharsPerPhrase int
	// MinWordsPerPhrase is the minimum word count below which a part is
	// combined with a neighbor. Default 3.
	MinWordsPerPhrase int
}

const (
	defaultMaxCharsPerPhrase = 48
	defaultMinWordsPerPhrase = 3

	// minConnectorHalf is the minimum rune length either half of a sentence
	// must keep for a connector to be used as a cut point.
	minConnectorHalf = 10
)

func (o SplitOptions) withDefaults() SplitOptions {
	if o.MaxCharsPerPhrase <= 0 {
		o.MaxCharsPerPhrase = defaultMaxCharsPerPhrase
	}
	if o.MinWordsPerPhrase <= 0 {
		o.MinWordsPerPhrase = defaultMinWordsPerPhrase
	}
	return o
}

// SplitPhrases breaks narration text into ordered, display-ready phrases.
// Empty or whitespace-only input yields an empty list. The splitter never
// drops or reorders words; worst case it emits a phrase longer than
// MaxCharsPerPhrase when no acceptable cut point exists.
func SplitPhrases(text string, opts SplitOptions) []Phrase {
	opts = opts.withDefaults()

	normalized := textutil.CollapseWhitespace(text)
	if normalized == "" {
		return nil
	}

	var parts []string
	for _, sentence := range splitSentences(normalized) {
		if runeLen(sentence) <= opts.MaxCharsPerPhrase {
			parts = append(parts, sentence)
			continue
		}
		for _, part := range splitOnCommas(sentence, opts.MaxCharsPerPhrase) {
			if runeLen(part) <= opts.MaxCharsPerPhrase {
				parts = append(parts, part)
				continue
			}
			parts = append(parts, splitOnConnector(part)...)
		}
	}

	merged := mergeShortParts(parts, opts)

	phrases := make([]Phrase, 0, len(merged))
	for i, part := range merged {
		phrases = append(phrases, newPhrase(part, i))
	}
	return phrases
}

// splitSentences splits on sentence-ending punctuation, re-attaching the
// terminal run to the preceding piece. A terminator only ends a sentence when
// followed by whitespace or end of text, so decimals like "4.6" stay intact.
func splitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isSentenceTerminal(runes[i]) {
			continue
		}
		end := i
		for end+1 < len(runes) && isSentenceTerminal(runes[end+1]) {
			end++
		}
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}
		if piece := strings.TrimSpace(string(runes[start : end+1])); piece != "" {
			out = append(out, piece)
		}
		start = end + 1
		i = end
	}
	if start < len(runes) {
		if piece := strings.TrimSpace(string(runes[start:])); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// splitOnCommas greedily accumulates comma-separated pieces until adding the
// next one would exceed maxChars, then starts a new accumulation. Every
// completed accumulation keeps its trailing comma except the last.
func splitOnCommas(sentence string, maxChars int) []string {
	pieces := strings.Split(sentence, ",")
	if len(pieces) == 1 {
		return []string{sentence}
	}

	var out []string
	current := ""
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if current == "" {
			current = piece
			continue
		}
		candidate := current + ", " + piece
		if runeLen(candidate) <= maxChars {
			current = candidate
			continue
		}
		out = append(out, current+",")
		current = piece
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		return []string{sentence}
	}
	return out
}

// splitOnConnector cuts a long part in two at the subordinating connector
// closest to the midpoint, keeping the connector with the second half. The
// cut is only taken when both halves keep at least minConnectorHalf runes;
// otherwise the part is returned intact (under-splitting beats fragments).
func splitOnConnector(part string) []string {
	locs := connectorPattern.FindAllStringIndex(part, -1)
	if len(locs) == 0 {
		return []string{part}
	}

	middle := float64(runeLen(part)) / 2
	bestAt := -1
	bestDist := 0.0
	for _, loc := range locs {
		head := strings.TrimSpace(part[:loc[0]])
		tail := strings.TrimSpace(part[loc[0]:])
		if runeLen(head) < minConnectorHalf || runeLen(tail) < minConnectorHalf {
			continue
		}
		dist := float64(runeLen(part[:loc[0]])) - middle
		if dist < 0 {
			dist = -dist
		}
		if bestAt < 0 || dist < bestDist {
			bestAt = loc[0]
			bestDist = dist
		}
	}
	if bestAt < 0 {
		return []string{part}
	}
	return []string{
		strings.TrimSpace(part[:bestAt]),
		strings.TrimSpace(part[bestAt:]),
	}
}

// mergeShortParts combines parts with fewer than MinWordsPerPhrase words
// with a neighbor when the result still fits MaxCharsPerPhrase. A short part
// that cannot combine forward is appended to the previous finished phrase if
// that fits, else kept standalone.
func mergeShortParts(parts []string, opts SplitOptions) []string {
	var out []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		for textutil.CountWords(part) < opts.MinWordsPerPhrase && i+1 < len(parts) {
			combined := part + " " + parts[i+1]
			if runeLen(combined) > opts.MaxCharsPerPhrase {
				break
			}
			part = combined
			i++
		}
		if textutil.CountWords(part) < opts.MinWordsPerPhrase && len(out) > 0 {
			combined := out[len(out)-1] + " " + part
			if runeLen(combined) <= opts.MaxCharsPerPhrase {
				out[len(out)-1] = combined
				continue
			}
		}
		out = append(out, part)
	}
	return out
}

func runeLen(s string) int {
	return len([]rune(s))
}
