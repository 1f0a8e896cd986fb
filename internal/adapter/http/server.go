// Package http exposes the retrieval service over a JSON/CSV HTTP API,
// along with health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/weathervault/internal/observability"
	"github.com/couchcryptid/weathervault/pkg/station"
	"github.com/couchcryptid/weathervault/pkg/weather"
)

// WeatherService assembles observation series. Implemented by
// weather.Service.
type WeatherService interface {
	GetWeatherData(ctx context.Context, stationID string, opts weather.Options) ([]weather.Observation, error)
}

// StationCatalog serves station metadata. Implemented by station.Catalog.
type StationCatalog interface {
	Search(ctx context.Context, q station.Query) ([]station.Station, error)
	YearsFor(ctx context.Context, stationID string) ([]int, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the weather retrieval API.
type Server struct {
	httpServer *http.Server
	weather    WeatherService
	catalog    StationCatalog
	logger     *slog.Logger
}

// NewServer creates the API server with all routes registered.
func NewServer(addr string, weatherSvc WeatherService, catalog StationCatalog, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      instrument(mux, logger, metrics),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 5 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
		weather: weatherSvc,
		catalog: catalog,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/observations", s.handleObservations)
	mux.HandleFunc("GET /v1/stations", s.handleStations)
	mux.HandleFunc("GET /v1/stations/{id}/years", s.handleStationYears)
	mux.HandleFunc("GET /v1/countries", s.handleCountries)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := s.catalog.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleObservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	stationID := q.Get("station")
	if stationID == "" {
		writeError(w, http.StatusBadRequest, "station query parameter is required")
		return
	}

	opts := weather.DefaultOptions()
	opts.TempUnit = q.Get("unit")

	years, err := parseYears(q.Get("years"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts.Years = years

	for _, p := range []struct {
		name string
		dst  *bool
	}{
		{"local", &opts.ConvertToLocal},
		{"hourly", &opts.MakeHourly},
		{"station_info", &opts.IncludeStationInfo},
		{"quiet", &opts.Quiet},
	} {
		if v := q.Get(p.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid "+p.name+" parameter")
				return
			}
			*p.dst = b
		}
	}

	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		writeError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	rows, err := s.weather.GetWeatherData(r.Context(), stationID, opts)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if format == "csv" {
		writeCSV(w, rows, opts.IncludeStationInfo)
		return
	}
	if rows == nil {
		rows = []weather.Observation{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"station":      stationID,
		"count":        len(rows),
		"observations": rows,
	})
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := station.Query{
		Name:        q.Get("name"),
		Country:     q.Get("country"),
		CountryCode: q.Get("country_code"),
		State:       q.Get("state"),
	}

	latRange, err := parseRange(q.Get("lat_min"), q.Get("lat_max"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid latitude range")
		return
	}
	query.LatRange = latRange

	lonRange, err := parseRange(q.Get("lon_min"), q.Get("lon_max"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid longitude range")
		return
	}
	query.LonRange = lonRange

	if v := q.Get("recent"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid recent parameter")
			return
		}
		query.HasRecentData = b
	}

	stations, err := s.catalog.Search(r.Context(), query)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(stations),
		"stations": stations,
	})
}

func (s *Server) handleStationYears(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")

	years, err := s.catalog.YearsFor(r.Context(), stationID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"station": stationID,
		"years":   years,
	})
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"countries": station.Countries()})
}

// writeServiceError maps domain sentinels onto HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, weather.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrStationNotFound), errors.Is(err, weather.ErrNoDataAvailable):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrTransport):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseYears(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New("years must be a comma-separated list of integers")
		}
		years = append(years, y)
	}
	return years, nil
}

func parseRange(minRaw, maxRaw string) (*station.Range, error) {
	if minRaw == "" && maxRaw == "" {
		return nil, nil
	}
	if minRaw == "" || maxRaw == "" {
		return nil, errors.New("both bounds are required")
	}
	min, err := strconv.ParseFloat(minRaw, 64)
	if err != nil {
		return nil, err
	}
	max, err := strconv.ParseFloat(maxRaw, 64)
	if err != nil {
		return nil, err
	}
	return &station.Range{Min: min, Max: max}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeCSV streams observations with the fixed column header. The header is
// written even for an empty result so the schema is always visible.
func writeCSV(w http.ResponseWriter, rows []weather.Observation, inclStationInfo bool) {
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	cw.Write(weather.Columns(inclStationInfo)) //nolint:errcheck // flush reports errors
	for _, row := range rows {
		cw.Write(row.Record(inclStationInfo)) //nolint:errcheck
	}
	cw.Flush()
}
