// Package script defines the narration script model and the phrase splitter
// that breaks narration text into short, display-ready phrases.
//
// The splitter is total: malformed or empty input yields an empty phrase
// list, and sentences that cannot be split under the configured limits are
// emitted intact rather than dropped or fragmented.
package script
