package script

import (
	"strings"

	"cueplan/internal/textutil"
)

// Narration is a four-section narration script produced by the upstream
// script generator. Section order is fixed: hook, body, opinion, cta.
type Narration struct {
	Hook    string `json:"hook"`
	Body    string `json:"body"`
	Opinion string `json:"opinion"`
	CTA     string `json:"cta"`
}

// Joined concatenates the non-empty sections in order, separated by single
// spaces. This is the text all lexical scanning runs over.
func (n Narration) Joined() string {
	parts := make([]string, 0, 4)
	for _, section := range []string{n.Hook, n.Body, n.Opinion, n.CTA} {
		section = textutil.CollapseWhitespace(section)
		if section != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether every section is empty or whitespace.
func (n Narration) IsEmpty() bool {
	return n.Joined() == ""
}

// Phrase is a short, punctuation-bounded span of narration text sized for
// single-screen display. Index is a 0-based, gap-free sequence position;
// CharCount and WordCount are derived at construction.
type Phrase struct {
	Text      string `json:"text"`
	Index     int    `json:"index"`
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
}

func newPhrase(text string, index int) Phrase {
	return Phrase{
		Text:      text,
		Index:     index,
		CharCount: len([]rune(text)),
		WordCount: textutil.CountWords(text),
	}
}
