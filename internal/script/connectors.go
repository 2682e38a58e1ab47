package script

import (
	"regexp"
	"strings"
)

// connectors is the fixed lexicon of subordinating connectors usable as cut
// points inside over-long sentences: causal, temporal, and contrastive
// conjunctions. Multi-word entries come first so the alternation prefers the
// longest form.
var connectors = []string{
	"even though",
	"so that",
	"as soon as",
	"because",
	"although",
	"whereas",
	"though",
	"unless",
	"until",
	"while",
	"since",
	"before",
	"after",
	"when",
	"but",
}

var connectorPattern = compileConnectorPattern()

func compileConnectorPattern() *regexp.Regexp {
	quoted := make([]string, 0, len(connectors))
	for _, c := range connectors {
		quoted = append(quoted, regexp.QuoteMeta(c))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
