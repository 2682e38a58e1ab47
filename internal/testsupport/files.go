package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cueplan/internal/script"
	"cueplan/internal/transcript"
)

// WriteTranscript writes segments as a transcript JSON file and returns its
// path.
func WriteTranscript(t testing.TB, dir string, segments []transcript.Segment) string {
	t.Helper()

	payload := struct {
		Segments []transcript.Segment `json:"segments"`
	}{Segments: segments}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal transcript: %v", err)
	}
	path := filepath.Join(dir, "transcript.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

// WriteScript writes a narration script as a JSON file and returns its path.
func WriteScript(t testing.TB, dir string, ns script.Narration) string {
	t.Helper()

	data, err := json.Marshal(ns)
	if err != nil {
		t.Fatalf("marshal script: %v", err)
	}
	path := filepath.Join(dir, "script.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// Narration returns a small three-section script used across tests.
func Narration() script.Narration {
	return script.Narration{
		Hook:    "This laptop changed how I work.",
		Body:    "The battery lasts two full days. However, the screen struggles outdoors and the fans get loud under load. Finally, the price dropped twice this year.",
		Opinion: "I think it is the best value right now.",
		CTA:     "Tell me what you use in the comments!",
	}
}

// Segments returns transcript segments matching a short spoken read.
func Segments() []transcript.Segment {
	return []transcript.Segment{
		{Text: "This laptop changed", Start: 0.2, End: 1.1},
		{Text: "how I work.", Start: 1.3, End: 2.0},
		{Text: "The battery lasts", Start: 2.8, End: 3.6},
		{Text: "two full days.", Start: 3.7, End: 4.6},
		{Text: "However, the screen struggles outdoors.", Start: 6.0, End: 8.1},
	}
}
