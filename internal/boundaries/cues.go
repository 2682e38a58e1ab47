package boundaries

import (
	"regexp"
	"sort"
	"strings"
)

// Cue weights by category. Strong contrastive cues are the clearest topical
// shifts; weak first-person cues merely hint at an opinion turn.
const (
	weightContrastive = 1.0
	weightConclusive  = 0.8
	weightMedium      = 0.7
	weightFirstPerson = 0.6
)

type cueEntry struct {
	phrase string
	weight float64
}

// cueTable is the fixed transition-cue lexicon. Phrases are stored folded
// (lowercase, no diacritics); matching happens over folded script text in a
// single shared scanning pass.
var cueTable = []cueEntry{
	{"on the other hand", weightContrastive},
	{"however", weightContrastive},
	{"nevertheless", weightContrastive},
	{"nonetheless", weightContrastive},
	{"in contrast", weightContrastive},
	{"on the contrary", weightContrastive},
	{"that said", weightContrastive},

	{"finally", weightConclusive},
	{"in conclusion", weightConclusive},
	{"ultimately", weightConclusive},
	{"in the end", weightConclusive},
	{"to sum up", weightConclusive},
	{"all in all", weightConclusive},

	{"interestingly", weightMedium},
	{"meanwhile", weightMedium},
	{"surprisingly", weightMedium},
	{"curiously", weightMedium},
	{"at the same time", weightMedium},
	{"notably", weightMedium},

	{"i think", weightFirstPerson},
	{"i believe", weightFirstPerson},
	{"it seems to me", weightFirstPerson},
	{"in my opinion", weightFirstPerson},
	{"personally", weightFirstPerson},
}

var (
	cuePattern = compileCuePattern()
	cueWeights = buildCueWeights()
)

func compileCuePattern() *regexp.Regexp {
	phrases := make([]string, 0, len(cueTable))
	for _, e := range cueTable {
		phrases = append(phrases, e.phrase)
	}
	// Longest first so the leftmost-first alternation prefers full phrases.
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })
	for i, p := range phrases {
		phrases[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(phrases, "|") + `)\b`)
}

func buildCueWeights() map[string]float64 {
	m := make(map[string]float64, len(cueTable))
	for _, e := range cueTable {
		m[e.phrase] = e.weight
	}
	return m
}

// cueMatch is one lexicon hit: its character offset into the folded script
// text and the cue's weight.
type cueMatch struct {
	offset int
	phrase string
	weight float64
}

// scanCues finds every transition-cue occurrence in folded text in one pass.
func scanCues(folded string) []cueMatch {
	locs := cuePattern.FindAllStringIndex(folded, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]cueMatch, 0, len(locs))
	for _, loc := range locs {
		phrase := folded[loc[0]:loc[1]]
		matches = append(matches, cueMatch{
			offset: loc[0],
			phrase: phrase,
			weight: cueWeights[phrase],
		})
	}
	return matches
}
