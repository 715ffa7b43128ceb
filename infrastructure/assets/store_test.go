package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kuyka38/mijawharati-sub000/domain/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), time.Second)
	if err != nil {
		t.Fatalf("failed to create asset store: %v", err)
	}
	return store
}

func writeSourceImage(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write source image: %v", err)
	}
	return path
}

func TestSaveCopiesSourceIntoRoot(t *testing.T) {
	store := newTestStore(t)
	source := writeSourceImage(t, "ring.jpg", []byte("jpeg-bytes"))

	dest, err := store.Save(context.Background(), source)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if filepath.Dir(dest) != store.Root() {
		t.Errorf("expected destination under root %s, got %s", store.Root(), dest)
	}
	if !strings.HasSuffix(dest, ".jpg") {
		t.Errorf("expected .jpg extension to be preserved, got %s", dest)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("destination not readable: %v", err)
	}
	if string(got) != "jpeg-bytes" {
		t.Errorf("destination content mismatch: %q", got)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)
	source := writeSourceImage(t, "ring.jpg", []byte("img"))

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		dest, err := store.Save(context.Background(), source)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if seen[dest] {
			t.Fatalf("duplicate destination name: %s", dest)
		}
		seen[dest] = true
	}
}

func TestSaveUnreadableSource(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	if err == nil {
		t.Fatal("expected error for unreadable source")
	}
	if !errors.Is(err, shared.ErrIO) {
		t.Errorf("expected io domain error, got %v", err)
	}

	// No partial destination may be left behind.
	entries, readErr := os.ReadDir(store.Root())
	if readErr != nil {
		t.Fatalf("failed to read root: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty root after failed save, found %d entries", len(entries))
	}
}

func TestSaveFromCancelledContext(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.SaveFrom(ctx, strings.NewReader("img"), ".png")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, shared.ErrIO) {
		t.Errorf("expected io domain error, got %v", err)
	}

	entries, readErr := os.ReadDir(store.Root())
	if readErr != nil {
		t.Fatalf("failed to read root: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("expected no partial file after cancelled save, found %d entries", len(entries))
	}
}

func TestDeleteRemovesAsset(t *testing.T) {
	store := newTestStore(t)
	source := writeSourceImage(t, "ring.jpg", []byte("img"))

	dest, err := store.Save(context.Background(), source)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	store.Delete(dest)
	if _, statErr := os.Stat(dest); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("expected asset to be gone, stat returned %v", statErr)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Missing path and empty path both succeed silently.
	store.Delete(filepath.Join(store.Root(), "never-existed.jpg"))
	store.Delete("")

	t.Log("✓ Idempotent delete tests passed")
}
