package cart

import (
	"os"
	"path/filepath"
	"testing"

	"garage-sale/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	in := []Line{
		{Product: domain.Product{ID: 1, Name: "Lamp", Price: 24.50, AvailableCount: 1}, Quantity: 1},
		{Product: domain.Product{ID: 2, Name: "Records", Price: 19.99, AvailableCount: 3}, Quantity: 2},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if out[0].Product.ID != 1 || out[0].Quantity != 1 || out[1].Product.ID != 2 || out[1].Quantity != 2 {
		t.Fatalf("unexpected lines: %+v", out)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(t.TempDir())
	lines, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lines != nil {
		t.Fatalf("expected no lines, got %+v", lines)
	}
}

func TestFileStoreMalformedFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error for malformed file")
	}

	// The cart itself degrades to empty instead of failing.
	c := New(store, nil)
	if !c.Empty() {
		t.Fatalf("expected empty cart from malformed state")
	}
}

func TestFileStoreCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := NewFileStore(dir)
	if err := store.Save([]Line{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cart.json")); err != nil {
		t.Fatalf("expected cart file: %v", err)
	}
}
