package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	reloaded := make(chan struct{}, 4)
	w, err := Watch(path, func() error {
		reloaded <- struct{}{}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("categories: [{title: Customs}]\n"), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("expected reload after file write")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	reloaded := make(chan struct{}, 4)
	w, err := Watch(path, func() error {
		reloaded <- struct{}{}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-reloaded:
		t.Fatal("unexpected reload for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_RequiresArguments(t *testing.T) {
	if _, err := Watch("", func() error { return nil }, nil); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Watch("catalog.yaml", nil, nil); err == nil {
		t.Fatal("expected error for nil reload")
	}
}
