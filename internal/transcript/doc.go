// Package transcript models speech-to-text transcript segments and parses
// the WhisperX-style JSON payloads produced by the external transcription
// service.
//
// The engine packages assume segments are ordered and non-overlapping;
// Validate enforces that precondition at the boundary where transcripts
// enter the system, so malformed input fails fast instead of producing a
// corrupted block sequence.
package transcript
