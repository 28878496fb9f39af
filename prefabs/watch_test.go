package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/crate.yaml", ChangeSpec, true},
		{"prefabs/world.YML", ChangeSpec, true},
		{"prefabs/scripts/demo.tengo", ChangeScript, true},
		{"prefabs/.crate.yaml.swp", 0, false},
		{"prefabs/readme.md", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			kind, ok := classify(tc.path)
			if ok != tc.ok || kind != tc.kind {
				t.Fatalf("classify(%q) = %v, %v; want %v, %v", tc.path, kind, ok, tc.kind, tc.ok)
			}
		})
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(10*time.Millisecond, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	path := filepath.Join(dir, "crate.yaml")
	if err := os.WriteFile(path, []byte("type: square\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Changes:
		if change.Kind != ChangeSpec || filepath.Base(change.Path) != "crate.yaml" {
			t.Fatalf("unexpected change %+v", change)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(DefaultDebounce, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Changes; ok {
		t.Fatal("Changes should be closed")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(DefaultDebounce, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestWatcherReportsFinalWriteOnce(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(100*time.Millisecond, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	path := filepath.Join(dir, "crate.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("type: square\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Changes:
		data, err := os.ReadFile(change.Path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "type: square\n" {
			t.Fatalf("change reported before the final write, content %q", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	select {
	case change := <-w.Changes:
		t.Fatalf("expected one change per save, got another %+v", change)
	case <-time.After(300 * time.Millisecond):
	}
}
