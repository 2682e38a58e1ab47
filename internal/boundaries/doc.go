// Package boundaries detects topic-aligned scene-cut timestamps from lexical
// transition cues in a narration script.
//
// The detector is a best-effort heuristic, not a guarantee: it returns nil
// whenever no confident cut pair exists, and callers must fall back to
// uniform thirds. Character offsets are mapped to time by linear
// interpolation over the script length; the mapping is a coarse but
// monotonic proxy whose 15% tolerance was tuned against it, so it is kept
// as-is rather than reconciled with transcript timing.
package boundaries
