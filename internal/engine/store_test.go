package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreCachesByModTime(t *testing.T) {
	path := writeCSV(t, "Amount\n100\n")
	store := NewStore(path)

	first, err := store.Get()
	if err != nil {
		t.Fatal(err)
	}
	again, err := store.Get()
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Fatal("unchanged file should return the cached dataset")
	}

	// Rewrite with a bumped mtime; the store must reload.
	if err := os.WriteFile(path, []byte("Amount\n100\n200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	reloaded, err := store.Get()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded == first {
		t.Fatal("modified file should trigger a reload")
	}
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded dataset: expected 2 rows, got %d", reloaded.Len())
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.csv"))
	if _, err := store.Get(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, err := store.Get(); err == nil {
		t.Fatal("error should persist on retry while the file is absent")
	}
}

func TestStoreRecoversWhenFileAppears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.csv")
	store := NewStore(path)
	if _, err := store.Get(); err == nil {
		t.Fatal("expected an error before the file exists")
	}

	if err := os.WriteFile(path, []byte("Amount\n42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := store.Get()
	if err != nil {
		t.Fatalf("expected recovery once the file exists, got %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", ds.Len())
	}
}
