package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cueplan/internal/plan"
	"cueplan/internal/script"
	"cueplan/internal/testsupport"
)

func TestPlanCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())
	transcriptPath := testsupport.WriteTranscript(t, env.baseDir, testsupport.Segments())

	out, _, err := runCLI(t, []string{
		"plan", scriptPath, "--transcript", transcriptPath, "--duration", "60", "--json",
	}, env.configPath)
	if err != nil {
		t.Fatalf("plan --json: %v", err)
	}

	var p plan.Plan
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("unmarshal plan output: %v\n%s", err, out)
	}
	if p.Source != plan.SourceTranscript {
		t.Fatalf("expected transcript source, got %s", p.Source)
	}
	if p.TotalSeconds != 60 {
		t.Fatalf("expected duration 60, got %g", p.TotalSeconds)
	}
	if len(p.Blocks) == 0 {
		t.Fatalf("expected blocks in plan output")
	}
	if p.Boundary == nil {
		t.Fatalf("expected a boundary for the cue-bearing fixture script")
	}
}

func TestPlanCommandFallbackSummary(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())

	out, _, err := runCLI(t, []string{"plan", scriptPath, "--duration", "45"}, env.configPath)
	if err != nil {
		t.Fatalf("plan fallback: %v", err)
	}
	requireContains(t, out, "Run ")
	requireContains(t, out, "phrases")
	requireContains(t, out, "Weight")
}

func TestPlanCommandRequiresDuration(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())

	_, _, err := runCLI(t, []string{"plan", scriptPath}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "duration") {
		t.Fatalf("expected duration error, got %v", err)
	}
}

func TestPlanCommandOutputFile(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())
	outPath := filepath.Join(env.baseDir, "plan.json")

	out, _, err := runCLI(t, []string{
		"plan", scriptPath, "--duration", "45", "--output", outPath,
	}, env.configPath)
	if err != nil {
		t.Fatalf("plan --output: %v", err)
	}
	requireContains(t, out, "Wrote plan to "+outPath)

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read plan file: %v", err)
	}
	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal plan file: %v", err)
	}
	if p.Source != plan.SourcePhrases {
		t.Fatalf("expected phrase source, got %s", p.Source)
	}
}

func TestPlanSaveAndRunsLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())

	out, _, err := runCLI(t, []string{"plan", scriptPath, "--duration", "60", "--save"}, env.configPath)
	if err != nil {
		t.Fatalf("plan --save: %v", err)
	}
	requireContains(t, out, "Saved run ")
	runID := extractRunID(t, out)

	out, _, err = runCLI(t, []string{"runs", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	requireContains(t, out, runID)
	requireContains(t, out, "This laptop changed")

	out, _, err = runCLI(t, []string{"runs", "show", runID, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("runs show: %v", err)
	}
	var p plan.Plan
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("unmarshal shown plan: %v", err)
	}
	if p.RunID != runID {
		t.Fatalf("expected run %s, got %s", runID, p.RunID)
	}

	out, _, err = runCLI(t, []string{"runs", "remove", runID}, env.configPath)
	if err != nil {
		t.Fatalf("runs remove: %v", err)
	}
	requireContains(t, out, "Removed run "+runID)

	out, _, err = runCLI(t, []string{"runs", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("runs list after remove: %v", err)
	}
	requireContains(t, out, "No stored runs")
}

func TestSampleCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())
	transcriptPath := testsupport.WriteTranscript(t, env.baseDir, testsupport.Segments())

	out, _, err := runCLI(t, []string{
		"plan", scriptPath, "--transcript", transcriptPath, "--duration", "60", "--save",
	}, env.configPath)
	if err != nil {
		t.Fatalf("plan --save: %v", err)
	}
	runID := extractRunID(t, out)

	out, _, err = runCLI(t, []string{"sample", runID, "--time", "1.0", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sample --time: %v", err)
	}

	var sample struct {
		Index   int      `json:"index"`
		Lines   []string `json:"lines"`
		Opacity float64  `json:"opacity"`
	}
	if err := json.Unmarshal([]byte(out), &sample); err != nil {
		t.Fatalf("unmarshal sample output: %v\n%s", err, out)
	}
	if sample.Index != 0 {
		t.Fatalf("expected first block active at 1.0s, got index %d", sample.Index)
	}
	if sample.Opacity != 1 {
		t.Fatalf("expected full opacity mid-block, got %g", sample.Opacity)
	}
	if len(sample.Lines) == 0 {
		t.Fatalf("expected block lines in sample output")
	}

	// One second at the configured 30fps lands on the same block.
	out, _, err = runCLI(t, []string{"sample", runID, "--frame", "30"}, env.configPath)
	if err != nil {
		t.Fatalf("sample --frame: %v", err)
	}
	requireContains(t, out, "Block 0")
}

func TestBoundariesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())

	out, _, err := runCLI(t, []string{"boundaries", scriptPath, "--duration", "60"}, env.configPath)
	if err != nil {
		t.Fatalf("boundaries: %v", err)
	}
	requireContains(t, out, "Cut 1:")
	requireContains(t, out, "Cut 2:")
}

func TestBoundariesCommandFallback(t *testing.T) {
	env := setupCLITestEnv(t)

	// No cue phrases anywhere: the detector yields nothing and the command
	// reports uniform thirds.
	ns := script.Narration{
		Hook: "Three lamps on one desk.",
		Body: "Each lamp uses a different bulb. The warm one wins at night. The cold one wins for reading.",
	}
	scriptPath := testsupport.WriteScript(t, env.baseDir, ns)

	out, _, err := runCLI(t, []string{"boundaries", scriptPath, "--duration", "54", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("boundaries fallback: %v", err)
	}

	var result struct {
		Cut1     float64 `json:"cut1"`
		Cut2     float64 `json:"cut2"`
		Fallback bool    `json:"fallback"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("unmarshal boundary output: %v", err)
	}
	if !result.Fallback {
		t.Fatalf("expected fallback for cue-less script")
	}
	if result.Cut1 != 18 || result.Cut2 != 36 {
		t.Fatalf("expected uniform thirds (18, 36), got (%g, %g)", result.Cut1, result.Cut2)
	}
}

func TestBlocksCommandWithTranscript(t *testing.T) {
	env := setupCLITestEnv(t)

	scriptPath := testsupport.WriteScript(t, env.baseDir, testsupport.Narration())
	transcriptPath := testsupport.WriteTranscript(t, env.baseDir, testsupport.Segments())

	out, _, err := runCLI(t, []string{"blocks", scriptPath, "--transcript", transcriptPath}, env.configPath)
	if err != nil {
		t.Fatalf("blocks: %v", err)
	}
	requireContains(t, out, "Weight")
	requireContains(t, out, "0.20")
}

func TestLogsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	if err := os.MkdirAll(env.cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatalf("mkdir log dir: %v", err)
	}
	logPath := filepath.Join(env.cfg.Paths.LogDir, "cueplan.log")
	if err := os.WriteFile(logPath, []byte("first\nsecond\nthird\n"), 0o644); err != nil {
		t.Fatalf("write log file: %v", err)
	}

	out, _, err := runCLI(t, []string{"logs", "--lines", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("logs --lines: %v", err)
	}
	if strings.Contains(out, "first") {
		t.Fatalf("expected only trailing lines, got %q", out)
	}
	requireContains(t, out, "second")
	requireContains(t, out, "third")
}

func extractRunID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Saved run ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Saved run "))
		}
	}
	t.Fatalf("no run id in output %q", out)
	return ""
}
