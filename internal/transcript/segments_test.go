package transcript

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseWhisperPayload(t *testing.T) {
	data := []byte(`{"segments":[
		{"text":" Hola a todos. ","start":0.0,"end":1.4},
		{"text":"","start":1.4,"end":1.5},
		{"text":"Hoy hablamos de algo nuevo.","start":1.6,"end":3.2}
	]}`)
	segs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments (empty dropped), got %d", len(segs))
	}
	if segs[0].Text != "Hola a todos." {
		t.Fatalf("text should be trimmed, got %q", segs[0].Text)
	}
	if segs[1].Duration() != 3.2-1.6 {
		t.Fatalf("unexpected duration %f", segs[1].Duration())
	}
}

func TestParseBareArray(t *testing.T) {
	data := []byte(`[{"text":"one","start":0,"end":1},{"text":"two","start":1,"end":2}]`)
	segs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")
	if err := os.WriteFile(path, []byte(`{"segments":[{"text":"hi","start":0,"end":0.5}]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	segs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(segs) != 1 || segs[0].Text != "hi" {
		t.Fatalf("unexpected segments %+v", segs)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	good := []Segment{{Text: "a", Start: 0, End: 1}, {Text: "b", Start: 1.2, End: 2}}
	if err := Validate(good); err != nil {
		t.Fatalf("Validate(good): %v", err)
	}

	cases := map[string][]Segment{
		"negative start":    {{Text: "a", Start: -1, End: 1}},
		"inverted interval": {{Text: "a", Start: 2, End: 1}},
		"overlap":           {{Text: "a", Start: 0, End: 2}, {Text: "b", Start: 1.5, End: 3}},
	}
	for name, segs := range cases {
		if err := Validate(segs); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	if got := TotalDuration(nil); got != 0 {
		t.Fatalf("empty transcript should have duration 0, got %f", got)
	}
	segs := []Segment{{Text: "a", Start: 0, End: 1}, {Text: "b", Start: 1, End: 3.5}}
	if got := TotalDuration(segs); got != 3.5 {
		t.Fatalf("expected 3.5, got %f", got)
	}
}
