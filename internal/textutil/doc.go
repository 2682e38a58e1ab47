// Package textutil provides text processing utilities shared by the
// narration engine: diacritic/case folding for lexicon matching, whitespace
// normalization, word counting, and filename sanitization.
//
// Folding uses Unicode decomposition (NFD) and strips combining marks so
// that lexicon scans match accented and unaccented spellings alike.
package textutil
