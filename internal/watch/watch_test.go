package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestRelevant(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"app.json", true},
		{"capsules.yaml", true},
		{"extra.yml", true},
		{"notes.txt", false},
		{".dagaz-tmp-123", false},
		{".hidden.yaml", false},
	}
	for _, c := range cases {
		if got := relevant(c.name); got != c.want {
			t.Errorf("relevant(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRun_TriggersOnChange(t *testing.T) {
	dir := t.TempDir()
	proj := filepath.Join(dir, "app.json")
	if err := os.WriteFile(proj, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{proj}, 50*time.Millisecond, slog.New(slog.DiscardHandler), func() {
			fired.Add(1)
		})
	}()

	// Give the watcher a moment to start, then touch the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(proj, []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("watcher never fired")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRun_MissingPath(t *testing.T) {
	err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, 0, slog.New(slog.DiscardHandler), func() {})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}
