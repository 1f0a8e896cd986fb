package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/couchcryptid/weathervault/internal/observability"
	"github.com/couchcryptid/weathervault/pkg/isd"
	"github.com/couchcryptid/weathervault/pkg/station"
)

// ByteSource supplies the raw bytes of one station-year file. A nil slice
// with a nil error means the archive has no data for that year; that is not
// a failure. Any error is a transport problem and aborts the retrieval.
type ByteSource interface {
	Fetch(ctx context.Context, stationID string, year int) ([]byte, error)

	// BundledYears reports the years shipped in the offline sample store
	// for a station, empty when none. Used by the availability check to
	// trust local data without a remote inventory round trip.
	BundledYears(stationID string) []int
}

// Directory resolves station descriptors and per-station inventories.
// Implemented by station.Catalog.
type Directory interface {
	Lookup(ctx context.Context, stationID string) (station.Station, error)
	YearsFor(ctx context.Context, stationID string) ([]int, error)
}

// Options are the caller-facing retrieval knobs. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// Years to retrieve. Empty means every year in the station's inventory.
	Years []int

	// ConvertToLocal renders times in the station's zone instead of UTC.
	// Requesting year Y then also fetches Y-1 and Y+1, because a UTC-stamped
	// record near a year boundary can shift into the adjacent calendar year
	// once the local offset is applied. Buffer years never appear in the
	// result.
	ConvertToLocal bool

	// TempUnit for temperature and dew point output. Parsed with
	// ParseTempUnit; empty means Celsius.
	TempUnit string

	// MakeHourly resamples the result to a gap-filled hourly series.
	MakeHourly bool

	// IncludeStationInfo broadcasts the station descriptor onto every row.
	IncludeStationInfo bool

	// Quiet suppresses the partial-availability warning log.
	Quiet bool
}

// DefaultOptions returns the standard retrieval options: local time,
// Celsius, raw (non-hourly) cadence.
func DefaultOptions() Options {
	return Options{ConvertToLocal: true, TempUnit: string(Celsius)}
}

// Service assembles multi-year observation series for a station. It is
// stateless across calls; every retrieval is a pure function of its inputs
// and the collaborators' current snapshot.
type Service struct {
	source    ByteSource
	directory Directory
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewService wires a retrieval service from its collaborators.
func NewService(source ByteSource, directory Directory, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{source: source, directory: directory, logger: logger, metrics: metrics}
}

// GetWeatherData retrieves, decodes, and normalizes observations for a
// station, stitched across the requested years and trimmed to exactly those
// years. The result may be empty; its schema is stable regardless.
func (s *Service) GetWeatherData(ctx context.Context, stationID string, opts Options) ([]Observation, error) {
	start := time.Now()
	rows, err := s.getWeatherData(ctx, stationID, opts)
	s.metrics.RetrievalDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.RetrievalsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.RetrievalsTotal.WithLabelValues("success").Inc()
	return rows, nil
}

func (s *Service) getWeatherData(ctx context.Context, stationID string, opts Options) ([]Observation, error) {
	unit, err := ParseTempUnit(opts.TempUnit)
	if err != nil {
		return nil, err
	}

	st, err := s.directory.Lookup(ctx, stationID)
	if err != nil {
		if errors.Is(err, station.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q; use station search to find valid ids", ErrStationNotFound, stationID)
		}
		return nil, fmt.Errorf("lookup station %s: %w", stationID, err)
	}

	loc := s.stationLocation(st, opts.ConvertToLocal)

	requested, err := s.resolveYears(ctx, stationID, opts)
	if err != nil {
		return nil, err
	}

	plan := fetchPlan(requested, opts.ConvertToLocal)

	cfg := NormalizeConfig{
		Location:       loc,
		ConvertToLocal: opts.ConvertToLocal,
		TempUnit:       unit,
	}
	if opts.IncludeStationInfo {
		cfg.Station = &StationInfo{
			Name:    st.Name,
			Country: st.Country,
			State:   st.State,
			ICAO:    st.ICAO,
			Lat:     st.Lat,
			Lon:     st.Lon,
			Elev:    st.Elev,
		}
	}

	var rows []Observation
	for _, year := range plan {
		data, err := s.source.Fetch(ctx, stationID, year)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch %s year %d: %w", ErrTransport, stationID, year, err)
		}
		if data == nil {
			continue
		}
		batch := Normalize(isd.DecodeAll(data), cfg)
		s.metrics.ObservationsBuilt.Add(float64(len(batch)))
		rows = append(rows, batch...)
	}

	// Per-year chunks are independent; a deterministic sort restores the
	// global time order before any trim or resample.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Time.Before(rows[j].Time) })

	rows = trimToYears(rows, requested)

	if opts.MakeHourly {
		grid := loc
		if grid == nil {
			grid = time.UTC
		}
		rows = resampleHourly(rows, requested, grid)
	}

	return rows, nil
}

// stationLocation loads the station's zone for local-time output. An
// unknown or unloadable zone degrades to UTC with a warning rather than
// failing the retrieval.
func (s *Service) stationLocation(st station.Station, convertToLocal bool) *time.Location {
	if !convertToLocal || st.TZ == "" {
		return nil
	}
	loc, err := time.LoadLocation(st.TZ)
	if err != nil {
		s.logger.Warn("unknown station timezone, keeping UTC",
			"station_id", st.ID, "tz_name", st.TZ, "error", err)
		return nil
	}
	return loc
}

// resolveYears turns the caller's year selection into the definitive
// requested set: explicit years pass through availability reconciliation,
// an implicit request takes the station's whole inventory.
func (s *Service) resolveYears(ctx context.Context, stationID string, opts Options) ([]int, error) {
	if len(opts.Years) > 0 {
		return s.reconcile(ctx, stationID, dedupeYears(opts.Years), opts.Quiet)
	}

	inventory, err := s.directory.YearsFor(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("inventory for station %s: %w", stationID, err)
	}
	if len(inventory) == 0 {
		return nil, fmt.Errorf("%w: station %s has no data inventory", ErrNoDataAvailable, stationID)
	}
	return inventory, nil
}

// fetchPlan expands the requested years with their buffer years when local
// conversion is on. The plan is deduplicated and sorted; it may be a strict
// superset of the requested years, and the final trim guarantees the extras
// never leak into the result.
func fetchPlan(requested []int, convertToLocal bool) []int {
	if !convertToLocal {
		return requested
	}
	expanded := make([]int, 0, len(requested)*3)
	for _, y := range requested {
		expanded = append(expanded, y-1, y, y+1)
	}
	return dedupeYears(expanded)
}

// trimToYears keeps only rows whose wall-clock year, in the final output
// zone, is one of the requested years.
func trimToYears(rows []Observation, years []int) []Observation {
	keep := make(map[int]bool, len(years))
	for _, y := range years {
		keep[y] = true
	}
	out := rows[:0]
	for _, r := range rows {
		if keep[r.Time.Year()] {
			out = append(out, r)
		}
	}
	return out
}

func dedupeYears(years []int) []int {
	seen := make(map[int]bool, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Ints(out)
	return out
}
