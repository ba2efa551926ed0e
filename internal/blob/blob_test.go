package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()

	store, err := NewDiskStore(t.TempDir(), "/uploads/")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestDiskStore_Put(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	data := []byte("fake png bytes")

	result, err := store.Put(context.Background(), data, "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PublicID == "" {
		t.Error("expected a public id")
	}
	if !strings.HasSuffix(result.PublicID, ".png") {
		t.Errorf("expected .png extension, got %q", result.PublicID)
	}
	if result.URL != "/uploads/"+result.PublicID {
		t.Errorf("expected URL to join base and public id, got %q", result.URL)
	}

	stored, err := os.ReadFile(filepath.Join(store.Dir(), result.PublicID))
	if err != nil {
		t.Fatalf("failed to read stored object: %v", err)
	}
	if string(stored) != string(data) {
		t.Error("stored bytes do not match input")
	}
}

func TestDiskStore_Put_ContentTypeCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	result, err := store.Put(context.Background(), []byte("x"), "IMAGE/JPEG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(result.PublicID, ".jpg") {
		t.Errorf("expected .jpg extension, got %q", result.PublicID)
	}
}

func TestDiskStore_Put_UnsupportedType(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Put(context.Background(), []byte("x"), "application/pdf")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestDiskStore_Put_UniqueIDs(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Put(ctx, []byte("a"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Put(ctx, []byte("b"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.PublicID == second.PublicID {
		t.Error("expected distinct public ids for separate uploads")
	}
}

func TestDiskStore_Remove(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	result, err := store.Put(ctx, []byte("x"), "image/webp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Remove(ctx, result.PublicID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(store.Dir(), result.PublicID)); !os.IsNotExist(err) {
		t.Error("expected object to be deleted")
	}
}

func TestDiskStore_Remove_Missing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	err := store.Remove(context.Background(), "nope.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskStore_Remove_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"", "../secret.png", "sub/dir.png"} {
		if err := store.Remove(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for %q, got %v", id, err)
		}
	}
}
