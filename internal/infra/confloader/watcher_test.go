package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	changed := make(chan string, 4)
	w.OnChange(func(p string) { changed <- p })

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	w.StartAsync()

	// Give the watcher goroutine time to start before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0600); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}

	select {
	case p := <-changed:
		if filepath.Base(p) != "server.yaml" {
			t.Fatalf("changed path = %q", p)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification received")
	}
}

func TestWatcher_StopIsIdempotentForCallbacks(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	w.OnChange(func(string) {})
	w.StartAsync()

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
