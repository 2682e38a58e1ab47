package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining diacritical marks, so "Sin Embargo"
// and "sin embargo" (or "llegó" and "llego") compare equal. Transformers are
// stateful, so the chain is built per call; pipeline runs may be concurrent.
func Fold(s string) string {
	lowered := strings.ToLower(s)
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, lowered)
	if err != nil {
		return lowered
	}
	return out
}
