package preview

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.yaml")
	writeFile(t, file, "a")

	w, err := NewWatcher([]string{file}, 100*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	var calls atomic.Int32
	changed := make(chan string, 4)
	w.OnChange(func(path string) {
		calls.Add(1)
		changed <- path
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer w.Stop()

	for _, s := range []string{"b", "c", "d"} {
		writeFile(t, file, s)
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case path := <-changed:
		if filepath.Base(path) != "page.yaml" {
			t.Errorf("path = %q", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	time.Sleep(250 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("OnChange called %d times, want 1", n)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.yaml")
	writeFile(t, file, "a")

	w, err := NewWatcher([]string{file}, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	changed := make(chan string, 1)
	w.OnChange(func(path string) { changed <- path })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "other.txt"), "x")

	select {
	case path := <-changed:
		t.Errorf("unexpected change for %q", path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "page.yaml")}, time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("first Stop error: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop error: %v", err)
	}
}
