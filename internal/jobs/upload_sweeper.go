package jobs

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/roamly/api/internal/blob"
)

// TripImageSource lists the image URLs currently referenced by trips
type TripImageSource interface {
	ImageURLs(ctx context.Context) ([]string, error)
}

// UploadSweeper periodically removes stored images that no trip
// references anymore. Files younger than MinAge are left alone so an
// upload is never deleted between storing it and saving the trip that
// uses it.
type UploadSweeper struct {
	trips    TripImageSource
	store    *blob.DiskStore
	interval time.Duration
	minAge   time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// UploadSweeperConfig holds upload sweeper configuration
type UploadSweeperConfig struct {
	Trips    TripImageSource
	Store    *blob.DiskStore
	Interval time.Duration // default 1 hour
	MinAge   time.Duration // default 24 hours
}

// NewUploadSweeper creates a new upload sweeper job
func NewUploadSweeper(cfg UploadSweeperConfig) *UploadSweeper {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}
	if cfg.MinAge == 0 {
		cfg.MinAge = 24 * time.Hour
	}
	return &UploadSweeper{
		trips:    cfg.Trips,
		store:    cfg.Store,
		interval: cfg.Interval,
		minAge:   cfg.MinAge,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the upload sweeper job
func (s *UploadSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	slog.Info("upload sweeper started", slog.Duration("interval", s.interval))
}

// Stop gracefully stops the upload sweeper job
func (s *UploadSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	slog.Info("upload sweeper stopped")
}

func (s *UploadSweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := s.Sweep(ctx); err != nil {
				slog.Error("upload sweep failed", slog.String("error", err.Error()))
			}
			cancel()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep removes unreferenced files older than MinAge from the store.
// It is exposed for tests and for one-off manual runs.
func (s *UploadSweeper) Sweep(ctx context.Context) error {
	urls, err := s.trips.ImageURLs(ctx)
	if err != nil {
		return err
	}

	referenced := make(map[string]bool, len(urls))
	for _, u := range urls {
		if id := publicIDFromURL(u); id != "" {
			referenced[id] = true
		}
	}

	entries, err := os.ReadDir(s.store.Dir())
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-s.minAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err2 := entry.Info()
		if err2 != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.store.Dir(), entry.Name())); err != nil {
			slog.Warn("failed to remove orphaned upload",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		slog.Info("removed orphaned uploads", slog.Int("count", removed))
	}
	return nil
}

// publicIDFromURL extracts the stored file name from an image URL.
// Returns "" for external URLs that do not point at the local store.
func publicIDFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
