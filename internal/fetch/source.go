// Package fetch acquires raw ISD year files. Lookups cascade from the
// embedded sample data through the local cache directory and the working
// directory to the NOAA archive over HTTP, with successful downloads
// written through to the cache.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/weathervault/internal/observability"
)

// Source resolves a station-year pair to raw (gzipped) ISD bytes.
type Source struct {
	baseURL  string
	cacheDir string
	client   *http.Client
	logger   *slog.Logger
	metrics  *observability.Metrics
	bundled  map[string][]int
}

// NewSource creates a byte source over the given archive base URL and local
// cache directory ("." means the working directory, "" disables the
// write-through cache).
func NewSource(baseURL, cacheDir string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Source {
	return &Source{
		baseURL:  baseURL,
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		metrics:  metrics,
		bundled:  bundledIndex(),
	}
}

// BundledYears lists the years shipped in the embedded sample data for a
// station, sorted ascending. Unknown stations yield an empty slice.
func (s *Source) BundledYears(stationID string) []int {
	years := s.bundled[stationID]
	out := make([]int, len(years))
	copy(out, years)
	return out
}

// Fetch returns the raw year file for a station, or (nil, nil) when the
// archive has no file for that year. Local sources are consulted before the
// network: embedded sample data, the cache directory, then the working
// directory.
func (s *Source) Fetch(ctx context.Context, stationID string, year int) ([]byte, error) {
	name := fmt.Sprintf("%s-%d.gz", stationID, year)

	if data, err := bundledFS.ReadFile("data/" + name); err == nil {
		s.metrics.YearFetches.WithLabelValues("bundled", "hit").Inc()
		return data, nil
	}

	for _, dir := range s.localDirs() {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		s.metrics.YearFetches.WithLabelValues("local", "hit").Inc()
		s.logger.Debug("year file found locally", "path", path)
		return data, nil
	}

	return s.download(ctx, stationID, year, name)
}

// localDirs returns the cache directory and the working directory, deduped
// when the cache directory is the working directory.
func (s *Source) localDirs() []string {
	if s.cacheDir == "" || s.cacheDir == "." {
		return []string{"."}
	}
	return []string{s.cacheDir, "."}
}

func (s *Source) download(ctx context.Context, stationID string, year int, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/%s", s.baseURL, year, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.YearFetches.WithLabelValues("http", "error").Inc()
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	s.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// The archive simply has no file for this station-year.
		s.metrics.YearFetches.WithLabelValues("http", "miss").Inc()
		s.logger.Debug("year file absent from archive", "station", stationID, "year", year)
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		s.metrics.YearFetches.WithLabelValues("http", "error").Inc()
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		s.metrics.YearFetches.WithLabelValues("http", "error").Inc()
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	s.metrics.YearFetches.WithLabelValues("http", "hit").Inc()
	s.writeThrough(name, data)
	return data, nil
}

// writeThrough caches a downloaded year file in the cache directory. With
// no cache directory configured nothing is persisted; the working directory
// is only ever a read fallback. Write failures are logged and swallowed;
// the caller already holds the bytes.
func (s *Source) writeThrough(name string, data []byte) {
	if s.cacheDir == "" {
		return
	}
	path := filepath.Join(s.cacheDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Warn("cache write failed", "path", path, "error", err)
		return
	}
	s.metrics.CacheWrites.Inc()
	s.logger.Debug("year file cached", "path", path)
}
