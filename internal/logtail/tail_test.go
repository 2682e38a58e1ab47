package logtail

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
}

func TestTailLastLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cueplan.log")
	writeLines(t, path, "one", "two", "three", "four")

	var buf bytes.Buffer
	if err := Tail(context.Background(), path, &buf, Options{Lines: 2}); err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if got := buf.String(); got != "three\nfour\n" {
		t.Fatalf("unexpected tail output %q", got)
	}
}

func TestTailFewerLinesThanLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cueplan.log")
	writeLines(t, path, "only")

	var buf bytes.Buffer
	if err := Tail(context.Background(), path, &buf, Options{Lines: 10}); err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if got := buf.String(); got != "only\n" {
		t.Fatalf("unexpected tail output %q", got)
	}
}

func TestTailMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")

	var buf bytes.Buffer
	if err := Tail(context.Background(), path, &buf, Options{Lines: 5}); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTailFollowPicksUpAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cueplan.log")
	writeLines(t, path, "start")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- Tail(ctx, path, &buf, Options{Lines: 1, Follow: true, Interval: 10 * time.Millisecond})
	}()

	time.Sleep(50 * time.Millisecond)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString("appended\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), "appended") {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !strings.Contains(buf.String(), "start") || !strings.Contains(buf.String(), "appended") {
		t.Fatalf("follow missed lines: %q", buf.String())
	}
}
