package preview

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 10 * time.Millisecond,
	})

	changes := make(chan Change, 8)
	w.OnChange(func(c Change) {
		select {
		case changes <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	// Give the initial scan a head start, then bump the mtime forward
	// so coarse filesystem timestamps still register as newer.
	time.Sleep(50 * time.Millisecond)
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Path != path {
			t.Errorf("Path = %q", c.Path)
		}
		if c.Type != ChangeSchema {
			t.Errorf("Type = %v", c.Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change detected")
	}
}

func TestWatcherDetectsDeletion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 10 * time.Millisecond,
	})

	changes := make(chan Change, 8)
	w.OnChange(func(c Change) {
		select {
		case changes <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Path != path {
			t.Errorf("Path = %q", c.Path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no deletion detected")
	}
}

func TestWatcherStop(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !w.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	w.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
	if w.IsRunning() {
		t.Error("IsRunning after Stop")
	}
}

func TestShouldIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{Ignore: []string{".git", "node_modules", "tmp", "*.tmp", "*~"}})

	tests := []struct {
		root string
		path string
		want bool
	}{
		{"/project", "/project/schema.yaml", false},
		{"/project", "/project/.git", true},
		{"/project", "/project/.git/config", true},
		{"/project", "/project/node_modules/pkg/index.js", true},
		{"/project", "/project/tmp/scratch.yaml", true},
		{"/project", "/project/out.tmp", true},
		{"/project", "/project/schema.yaml~", true},
		{"/project", "/project/dist.yaml", false},
		// Literal patterns never match ancestors of the watch root.
		{"/tmp/project", "/tmp/project/schema.yaml", false},
		{"/home/dist/project", "/home/dist/project/schema.yaml", false},
		{"/tmp/project", "/tmp/project/tmp/scratch.yaml", true},
	}

	for _, tt := range tests {
		if got := w.shouldIgnore(tt.root, tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q, %q) = %v, want %v", tt.root, tt.path, got, tt.want)
		}
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"schema.yaml", ChangeSchema},
		{"table.yml", ChangeSchema},
		{"domweave.json", ChangeSchema},
		{"notes.txt", ChangeOther},
		{"main.go", ChangeOther},
	}

	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
