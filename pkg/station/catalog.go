package station

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrNotFound marks a station id absent from the station history file.
var ErrNotFound = errors.New("station not found")

// DefaultBaseURL is the root of NOAA's ISD archive, which also hosts the
// station history and inventory files.
const DefaultBaseURL = "https://www.ncei.noaa.gov/pub/data/noaa"

// Catalog downloads and caches the ISD station history and inventory
// files. It is the explicitly owned replacement for ambient module-level
// caches: inject one instance, refresh it with ForceRefresh.
//
// The in-memory snapshots are guarded by a read-write mutex and copied on
// return, so concurrent readers never observe a refresh in progress.
type Catalog struct {
	baseURL string
	client  *http.Client
	finder  TimezoneFinder
	logger  *slog.Logger

	mu        sync.RWMutex
	stations  []Station
	byID      map[string]int
	inventory map[string][]int
	invLoaded bool
}

// NewCatalog creates a catalog over the given archive base URL (empty means
// DefaultBaseURL). finder may be nil, in which case stations carry no
// timezone and local-time retrieval degrades to UTC.
func NewCatalog(baseURL string, finder TimezoneFinder, logger *slog.Logger) *Catalog {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Catalog{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		finder:  finder,
		logger:  logger,
	}
}

// Stations returns the full station history, downloading it on first use.
func (c *Catalog) Stations(ctx context.Context) ([]Station, error) {
	if err := c.ensureStations(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Station, len(c.stations))
	copy(out, c.stations)
	return out, nil
}

// Lookup resolves one station descriptor by USAF-WBAN id.
func (c *Catalog) Lookup(ctx context.Context, stationID string) (Station, error) {
	if err := c.ensureStations(ctx); err != nil {
		return Station{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[stationID]
	if !ok {
		return Station{}, fmt.Errorf("%w: %s", ErrNotFound, stationID)
	}
	return c.stations[i], nil
}

// YearsFor returns the sorted, deduplicated years with any observations for
// a station. A station absent from the inventory yields an empty slice, not
// an error.
func (c *Catalog) YearsFor(ctx context.Context, stationID string) ([]int, error) {
	if err := c.ensureInventory(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	years := c.inventory[stationID]
	out := make([]int, len(years))
	copy(out, years)
	return out, nil
}

// Range is an inclusive numeric bound for coordinate filters.
type Range struct {
	Min float64
	Max float64
}

// Query filters the station history. Zero-value fields are ignored.
type Query struct {
	// Name matches station names containing this string, case-insensitive.
	Name string
	// Country matches country names containing this string, case-insensitive.
	Country string
	// CountryCode matches the ISO 3166-1 alpha-2 code exactly.
	CountryCode string
	// State matches the US state or territory code exactly.
	State string

	LatRange *Range
	LonRange *Range

	// HasRecentData keeps only stations whose history end date is on or
	// after January 1 of the previous year.
	HasRecentData bool
}

// Search returns the stations matching every set filter.
func (c *Catalog) Search(ctx context.Context, q Query) ([]Station, error) {
	stations, err := c.Stations(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Date(clock.Now().Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)

	out := make([]Station, 0, len(stations))
	for _, st := range stations {
		if !matches(st, q, cutoff) {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func matches(st Station, q Query, recentCutoff time.Time) bool {
	if q.Name != "" && !strings.Contains(strings.ToLower(st.Name), strings.ToLower(q.Name)) {
		return false
	}
	if q.Country != "" && !strings.Contains(strings.ToLower(st.Country), strings.ToLower(q.Country)) {
		return false
	}
	if q.CountryCode != "" && st.CountryCode != strings.ToUpper(q.CountryCode) {
		return false
	}
	if q.State != "" && st.State != strings.ToUpper(q.State) {
		return false
	}
	if q.LatRange != nil && (st.Lat == nil || *st.Lat < q.LatRange.Min || *st.Lat > q.LatRange.Max) {
		return false
	}
	if q.LonRange != nil && (st.Lon == nil || *st.Lon < q.LonRange.Min || *st.Lon > q.LonRange.Max) {
		return false
	}
	if q.HasRecentData && st.End.Before(recentCutoff) {
		return false
	}
	return true
}

// ForceRefresh drops the cached snapshots and re-downloads whatever was
// already loaded.
func (c *Catalog) ForceRefresh(ctx context.Context) error {
	c.mu.Lock()
	hadStations := c.stations != nil
	hadInventory := c.invLoaded
	c.stations = nil
	c.byID = nil
	c.inventory = nil
	c.invLoaded = false
	c.mu.Unlock()

	if hadStations {
		if err := c.ensureStations(ctx); err != nil {
			return err
		}
	}
	if hadInventory {
		if err := c.ensureInventory(ctx); err != nil {
			return err
		}
	}
	return nil
}

// CheckReadiness reports whether the station history can be served.
func (c *Catalog) CheckReadiness(ctx context.Context) error {
	return c.ensureStations(ctx)
}

func (c *Catalog) ensureStations(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.stations != nil
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	rows, err := c.fetchCSV(ctx, c.baseURL+"/isd-history.csv")
	if err != nil {
		return fmt.Errorf("station history: %w", err)
	}

	stations, byID := parseHistory(rows, c.finder)
	c.logger.Info("station history loaded", "stations", len(stations))

	c.mu.Lock()
	c.stations = stations
	c.byID = byID
	c.mu.Unlock()
	return nil
}

func (c *Catalog) ensureInventory(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.invLoaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	rows, err := c.fetchCSV(ctx, c.baseURL+"/isd-inventory.csv")
	if err != nil {
		return fmt.Errorf("station inventory: %w", err)
	}

	inventory := parseInventory(rows)
	c.logger.Info("station inventory loaded", "stations", len(inventory))

	c.mu.Lock()
	c.inventory = inventory
	c.invLoaded = true
	c.mu.Unlock()
	return nil
}

func (c *Catalog) fetchCSV(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("get %s: status %d: %s", url, resp.StatusCode, body)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return rows, nil
}

// parseHistory converts isd-history.csv rows (header first) into stations.
// Column positions are resolved from the header so upstream column
// reordering does not silently misparse.
func parseHistory(rows [][]string, finder TimezoneFinder) ([]Station, map[string]int) {
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	stations := make([]Station, 0, len(rows)-1)
	byID := make(map[string]int, len(rows)-1)

	for _, row := range rows[1:] {
		usaf := field(row, "USAF")
		wban := field(row, "WBAN")
		if usaf == "" || wban == "" {
			continue
		}

		fips := field(row, "CTRY")
		st := Station{
			ID:    usaf + "-" + wban,
			USAF:  usaf,
			WBAN:  wban,
			Name:  field(row, "STATION NAME"),
			State: field(row, "STATE"),
			ICAO:  field(row, "ICAO"),
			Lat:   parseCoord(field(row, "LAT")),
			Lon:   parseCoord(field(row, "LON")),
			Elev:  parseElevation(field(row, "ELEV(M)")),
			Begin: parseDate(field(row, "BEGIN")),
			End:   parseDate(field(row, "END")),
		}
		if name, ok := FIPSCountryName(fips); ok {
			st.Country = name
		}
		if iso, ok := FIPSToISO(fips); ok {
			st.CountryCode = iso
		}
		if finder != nil && st.Lat != nil && st.Lon != nil {
			st.TZ = finder.TimezoneName(*st.Lat, *st.Lon)
		}

		byID[st.ID] = len(stations)
		stations = append(stations, st)
	}

	return stations, byID
}

// parseInventory reduces isd-inventory.csv rows (header first) to a sorted
// unique year list per station. The monthly counts are summed only to drop
// all-zero rows.
func parseInventory(rows [][]string) map[string][]int {
	if len(rows) == 0 {
		return map[string][]int{}
	}

	seen := make(map[string]map[int]bool)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		usaf := strings.TrimSpace(row[0])
		wban := strings.TrimSpace(row[1])
		year, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || usaf == "" || wban == "" {
			continue
		}

		total := 0
		for _, cell := range row[3:] {
			if n, err := strconv.Atoi(strings.TrimSpace(cell)); err == nil {
				total += n
			}
		}
		if total == 0 {
			continue
		}

		id := usaf + "-" + wban
		if seen[id] == nil {
			seen[id] = make(map[int]bool)
		}
		seen[id][year] = true
	}

	inventory := make(map[string][]int, len(seen))
	for id, years := range seen {
		list := make([]int, 0, len(years))
		for y := range years {
			list = append(list, y)
		}
		sort.Ints(list)
		inventory[id] = list
	}
	return inventory
}

func parseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseElevation treats the history file's -999-style sentinels as missing.
func parseElevation(s string) *float64 {
	v := parseCoord(s)
	if v == nil || *v < -900 {
		return nil
	}
	return v
}

func parseDate(s string) time.Time {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
