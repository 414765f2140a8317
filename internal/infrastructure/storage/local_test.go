package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLocalStore_AcquireWritesUniqueFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "test", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	a, err := store.Acquire([]byte("audio data"), ".wav")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}

	if filepath.Dir(a.Path) != dir {
		t.Fatalf("artifact outside store dir: %s", a.Path)
	}
	if !strings.HasSuffix(a.Path, ".wav") {
		t.Fatalf("expected .wav extension, got %s", a.Path)
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		t.Fatalf("backing file missing: %v", err)
	}
	if string(data) != "audio data" {
		t.Fatalf("unexpected content %q", data)
	}

	b, err := store.Acquire([]byte("other"), ".wav")
	if err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
	if b.Path == a.Path {
		t.Fatal("artifact paths must be unique")
	}
}

func TestLocalStore_ReleaseDeletesFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "test", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	a, err := store.Acquire([]byte("x"), ".mp3")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}

	store.Release(a)

	if _, err := os.Stat(a.Path); !os.IsNotExist(err) {
		t.Fatalf("expected file deleted, stat err: %v", err)
	}
}

func TestLocalStore_ReleaseOfMissingFileIsNonFatal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "test", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	a, err := store.Acquire([]byte("x"), ".wav")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := os.Remove(a.Path); err != nil {
		t.Fatalf("setup remove failed: %v", err)
	}

	// Must not panic or surface an error
	store.Release(a)
	store.Release(nil)
}

func TestLocalStore_EmptyDirFallsBackToTempDir(t *testing.T) {
	store, err := NewLocalStore("", "test", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	a, err := store.Acquire([]byte("x"), ".wav")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer store.Release(a)

	if filepath.Dir(a.Path) != os.TempDir() {
		t.Fatalf("expected artifact under os temp dir, got %s", a.Path)
	}
}
