package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/roamly/api/internal/blob"
)

type stubImageSource struct {
	urls []string
	err  error
}

func (s *stubImageSource) ImageURLs(_ context.Context) ([]string, error) {
	return s.urls, s.err
}

func newSweepStore(t *testing.T) *blob.DiskStore {
	t.Helper()

	store, err := blob.NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

// writeAgedFile drops a file into the store directory with an old mtime
// so it falls behind the sweeper's age cutoff.
func writeAgedFile(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("img"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	old := time.Now().Add(-age)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("failed to age file: %v", err)
	}
}

func fileExists(t *testing.T, dir, name string) bool {
	t.Helper()

	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func TestUploadSweeper_Sweep_RemovesOrphans(t *testing.T) {
	store := newSweepStore(t)
	writeAgedFile(t, store.Dir(), "orphan.png", 48*time.Hour)
	writeAgedFile(t, store.Dir(), "kept.png", 48*time.Hour)

	source := &stubImageSource{urls: []string{"/uploads/kept.png"}}
	sweeper := NewUploadSweeper(UploadSweeperConfig{
		Trips:  source,
		Store:  store,
		MinAge: 24 * time.Hour,
	})

	if err := sweeper.Sweep(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fileExists(t, store.Dir(), "orphan.png") {
		t.Error("expected orphaned file to be removed")
	}
	if !fileExists(t, store.Dir(), "kept.png") {
		t.Error("expected referenced file to survive")
	}
}

func TestUploadSweeper_Sweep_SparesRecentFiles(t *testing.T) {
	store := newSweepStore(t)
	writeAgedFile(t, store.Dir(), "fresh.png", time.Minute)

	sweeper := NewUploadSweeper(UploadSweeperConfig{
		Trips:  &stubImageSource{},
		Store:  store,
		MinAge: 24 * time.Hour,
	})

	if err := sweeper.Sweep(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fileExists(t, store.Dir(), "fresh.png") {
		t.Error("expected recent file to survive even when unreferenced")
	}
}

func TestUploadSweeper_Sweep_AbsoluteReferenceURLs(t *testing.T) {
	store := newSweepStore(t)
	writeAgedFile(t, store.Dir(), "remote.png", 48*time.Hour)

	// Trips may store the full public URL rather than the relative path
	source := &stubImageSource{urls: []string{"https://api.roamly.app/uploads/remote.png"}}
	sweeper := NewUploadSweeper(UploadSweeperConfig{
		Trips:  source,
		Store:  store,
		MinAge: 24 * time.Hour,
	})

	if err := sweeper.Sweep(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fileExists(t, store.Dir(), "remote.png") {
		t.Error("expected file referenced by absolute URL to survive")
	}
}

func TestUploadSweeper_Sweep_SourceError(t *testing.T) {
	store := newSweepStore(t)
	writeAgedFile(t, store.Dir(), "orphan.png", 48*time.Hour)

	wantErr := errors.New("query failed")
	sweeper := NewUploadSweeper(UploadSweeperConfig{
		Trips: &stubImageSource{err: wantErr},
		Store: store,
	})

	err := sweeper.Sweep(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected source error, got %v", err)
	}

	// Nothing is deleted when the reference list is unavailable
	if !fileExists(t, store.Dir(), "orphan.png") {
		t.Error("expected no deletions after source error")
	}
}

func TestUploadSweeper_StartStop(t *testing.T) {
	store := newSweepStore(t)

	sweeper := NewUploadSweeper(UploadSweeperConfig{
		Trips:    &stubImageSource{},
		Store:    store,
		Interval: 10 * time.Millisecond,
	})

	sweeper.Start()
	time.Sleep(30 * time.Millisecond)
	sweeper.Stop()

	// Stop is idempotent
	sweeper.Stop()
}

func TestPublicIDFromURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"/uploads/abc.png", "abc.png"},
		{"https://api.roamly.app/uploads/abc.png", "abc.png"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := publicIDFromURL(tc.raw); got != tc.want {
			t.Errorf("publicIDFromURL(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
