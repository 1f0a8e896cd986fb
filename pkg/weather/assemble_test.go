package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weathervault/internal/observability"
	"github.com/couchcryptid/weathervault/pkg/station"
)

// lineAt splices a timestamp into the golden observation line. The
// timestamp fields occupy bytes 15-27 of the mandatory section.
func lineAt(ts time.Time) string {
	return goldenLine[:15] + ts.UTC().Format("200601021504") + goldenLine[27:]
}

func yearFile(times ...time.Time) []byte {
	var out []byte
	for _, ts := range times {
		out = append(out, lineAt(ts)...)
		out = append(out, '\n')
	}
	return out
}

type fakeSource struct {
	data     map[int][]byte
	bundled  []int
	fetchErr error
	fetched  []int
}

func (f *fakeSource) Fetch(_ context.Context, _ string, year int) ([]byte, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	f.fetched = append(f.fetched, year)
	return f.data[year], nil
}

func (f *fakeSource) BundledYears(string) []int { return f.bundled }

type fakeDirectory struct {
	station    station.Station
	lookupErr  error
	lookups    int
	years      []int
	yearsErr   error
	yearsCalls int
}

func (f *fakeDirectory) Lookup(context.Context, string) (station.Station, error) {
	f.lookups++
	if f.lookupErr != nil {
		return station.Station{}, f.lookupErr
	}
	return f.station, nil
}

func (f *fakeDirectory) YearsFor(context.Context, string) ([]int, error) {
	f.yearsCalls++
	if f.yearsErr != nil {
		return nil, f.yearsErr
	}
	return f.years, nil
}

const testStationID = "725030-14732"

func testStation() station.Station {
	return station.Station{
		ID:   testStationID,
		USAF: "725030", WBAN: "14732",
		Name: "LA GUARDIA AIRPORT", Country: "United States",
		CountryCode: "US", State: "NY", ICAO: "KLGA",
		TZ: "America/New_York",
	}
}

func newTestService(src *fakeSource, dir *fakeDirectory) *Service {
	return NewService(src, dir, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
}

func TestGetWeatherDataInvalidUnitFailsBeforeIO(t *testing.T) {
	dir := &fakeDirectory{station: testStation()}
	svc := newTestService(&fakeSource{}, dir)

	opts := DefaultOptions()
	opts.Years = []int{2023}
	opts.TempUnit = "rankine"

	_, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, dir.lookups, "unit validation must run before any lookup")
}

func TestGetWeatherDataStationNotFound(t *testing.T) {
	dir := &fakeDirectory{lookupErr: station.ErrNotFound}
	svc := newTestService(&fakeSource{}, dir)

	opts := DefaultOptions()
	opts.Years = []int{2023}

	_, err := svc.GetWeatherData(context.Background(), "000000-00000", opts)

	assert.ErrorIs(t, err, ErrStationNotFound)
	assert.Contains(t, err.Error(), "000000-00000")
}

func TestFetchPlanBufferYears(t *testing.T) {
	t.Run("local conversion fetches adjacent years", func(t *testing.T) {
		src := &fakeSource{bundled: []int{2022, 2023, 2024}}
		svc := newTestService(src, &fakeDirectory{station: testStation()})

		opts := DefaultOptions()
		opts.Years = []int{2023}

		_, err := svc.GetWeatherData(context.Background(), testStationID, opts)

		require.NoError(t, err)
		assert.Equal(t, []int{2022, 2023, 2024}, src.fetched)
	})

	t.Run("utc output fetches exactly the requested years", func(t *testing.T) {
		src := &fakeSource{bundled: []int{2023}}
		svc := newTestService(src, &fakeDirectory{station: testStation()})

		opts := DefaultOptions()
		opts.Years = []int{2023}
		opts.ConvertToLocal = false

		_, err := svc.GetWeatherData(context.Background(), testStationID, opts)

		require.NoError(t, err)
		assert.Equal(t, []int{2023}, src.fetched)
	})

	t.Run("overlapping triples are deduplicated and sorted", func(t *testing.T) {
		assert.Equal(t, []int{2019, 2020, 2021, 2022, 2023, 2024}, fetchPlan([]int{2023, 2020}, true))
		assert.Equal(t, []int{2021, 2022, 2023, 2024}, fetchPlan([]int{2021, 2022, 2023}, true))
		assert.Equal(t, []int{2020, 2023}, fetchPlan([]int{2020, 2023}, false))
	})
}

func TestBufferYearTrim(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	src := &fakeSource{
		bundled: []int{2022, 2023, 2024},
		data: map[int][]byte{
			// Mid-2022 record: stays 2022 locally, must be trimmed.
			2022: yearFile(time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)),
			// First record shifts to 2022-12-31 21:00 local: trimmed even
			// though it came from a requested-year file.
			2023: yearFile(
				time.Date(2023, 1, 1, 2, 0, 0, 0, time.UTC),
				time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC),
			),
			// 2024-01-01 02:00 UTC is 2023-12-31 21:00 local: kept, supplied
			// by the buffer year.
			2024: yearFile(
				time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			),
		},
	}
	svc := newTestService(src, &fakeDirectory{station: testStation()})

	opts := DefaultOptions()
	opts.Years = []int{2023}

	rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, time.Date(2023, 7, 15, 10, 0, 0, 0, nyc), rows[0].Time)
	assert.Equal(t, time.Date(2023, 12, 31, 21, 0, 0, 0, nyc), rows[1].Time)
	for _, r := range rows {
		assert.Equal(t, 2023, r.Time.Year())
	}
}

func TestEmptyYearsAreSkipped(t *testing.T) {
	src := &fakeSource{
		bundled: []int{2022, 2023, 2024},
		data: map[int][]byte{
			2023: yearFile(time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC)),
			// 2022 and 2024 yield no bytes, like a 404 from the archive.
		},
	}
	svc := newTestService(src, &fakeDirectory{station: testStation()})

	opts := DefaultOptions()
	opts.Years = []int{2023}

	rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTransportFailurePropagates(t *testing.T) {
	cause := errors.New("connection reset")
	src := &fakeSource{bundled: []int{2023}, fetchErr: cause}
	svc := newTestService(src, &fakeDirectory{station: testStation()})

	opts := DefaultOptions()
	opts.Years = []int{2023}
	opts.ConvertToLocal = false

	_, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
}

func TestImplicitAllYears(t *testing.T) {
	t.Run("uses the station inventory", func(t *testing.T) {
		src := &fakeSource{
			data: map[int][]byte{
				2022: yearFile(time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)),
				2023: yearFile(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)),
			},
		}
		dir := &fakeDirectory{station: testStation(), years: []int{2022, 2023}}
		svc := newTestService(src, dir)

		opts := DefaultOptions()
		opts.ConvertToLocal = false

		rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, []int{2022, 2023}, src.fetched)
	})

	t.Run("empty inventory is fatal", func(t *testing.T) {
		dir := &fakeDirectory{station: testStation()}
		svc := newTestService(&fakeSource{}, dir)

		_, err := svc.GetWeatherData(context.Background(), testStationID, DefaultOptions())

		assert.ErrorIs(t, err, ErrNoDataAvailable)
	})
}

func TestResultIsTimeSorted(t *testing.T) {
	src := &fakeSource{
		bundled: []int{2022, 2023},
		data: map[int][]byte{
			// Lines deliberately out of order inside the file.
			2022: yearFile(
				time.Date(2022, 12, 1, 6, 0, 0, 0, time.UTC),
				time.Date(2022, 2, 1, 6, 0, 0, 0, time.UTC),
			),
			2023: yearFile(time.Date(2023, 2, 1, 6, 0, 0, 0, time.UTC)),
		},
	}
	svc := newTestService(src, &fakeDirectory{station: testStation()})

	opts := DefaultOptions()
	opts.Years = []int{2022, 2023}
	opts.ConvertToLocal = false

	rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Time.Before(rows[i-1].Time))
	}
}

func TestIncludeStationInfo(t *testing.T) {
	src := &fakeSource{
		bundled: []int{2023},
		data:    map[int][]byte{2023: yearFile(time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC))},
	}
	svc := newTestService(src, &fakeDirectory{station: testStation()})

	opts := DefaultOptions()
	opts.Years = []int{2023}
	opts.ConvertToLocal = false
	opts.IncludeStationInfo = true

	rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Station)
	assert.Equal(t, "LA GUARDIA AIRPORT", rows[0].Station.Name)
	assert.Equal(t, "United States", rows[0].Station.Country)
	assert.Equal(t, "KLGA", rows[0].Station.ICAO)
}

func TestUnknownTimezoneDegradesToUTC(t *testing.T) {
	st := testStation()
	st.TZ = "Not/AZone"
	src := &fakeSource{
		bundled: []int{2022, 2023, 2024},
		data:    map[int][]byte{2023: yearFile(time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC))},
	}
	svc := newTestService(src, &fakeDirectory{station: st})

	opts := DefaultOptions()
	opts.Years = []int{2023}

	rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, time.UTC, rows[0].Time.Location())
}

func TestGetWeatherDataMakeHourly(t *testing.T) {
	src := &fakeSource{
		bundled: []int{2023},
		data: map[int][]byte{
			2023: yearFile(
				time.Date(2023, 7, 15, 14, 10, 0, 0, time.UTC),
				time.Date(2023, 7, 15, 14, 40, 0, 0, time.UTC),
			),
		},
	}
	svc := newTestService(src, &fakeDirectory{station: testStation()})

	opts := DefaultOptions()
	opts.Years = []int{2023}
	opts.ConvertToLocal = false
	opts.MakeHourly = true

	rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

	require.NoError(t, err)
	assert.Len(t, rows, 365*24)

	observed := 0
	for _, r := range rows {
		assert.Equal(t, testStationID, r.ID)
		if r.Temp != nil {
			observed++
			assert.Equal(t, time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC), r.Time)
		}
	}
	assert.Equal(t, 1, observed)
}

func TestRetrievalMetrics(t *testing.T) {
	t.Run("success counts retrieval and built rows", func(t *testing.T) {
		m := observability.NewMetricsForTesting()
		src := &fakeSource{
			bundled: []int{2022, 2023, 2024},
			data: map[int][]byte{
				2023: yearFile(
					time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC),
					time.Date(2023, 7, 15, 15, 0, 0, 0, time.UTC),
				),
			},
		}
		svc := NewService(src, &fakeDirectory{station: testStation()}, slog.New(slog.NewTextHandler(io.Discard, nil)), m)

		opts := DefaultOptions()
		opts.Years = []int{2023}

		rows, err := svc.GetWeatherData(context.Background(), testStationID, opts)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RetrievalsTotal.WithLabelValues("success")))
		assert.Zero(t, testutil.ToFloat64(m.RetrievalsTotal.WithLabelValues("error")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.ObservationsBuilt))
	})

	t.Run("failure counts the error outcome", func(t *testing.T) {
		m := observability.NewMetricsForTesting()
		src := &fakeSource{bundled: []int{2023}, fetchErr: errors.New("connection reset")}
		svc := NewService(src, &fakeDirectory{station: testStation()}, slog.New(slog.NewTextHandler(io.Discard, nil)), m)

		opts := DefaultOptions()
		opts.Years = []int{2023}
		opts.ConvertToLocal = false

		_, err := svc.GetWeatherData(context.Background(), testStationID, opts)

		require.Error(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RetrievalsTotal.WithLabelValues("error")))
		assert.Zero(t, testutil.ToFloat64(m.RetrievalsTotal.WithLabelValues("success")))
		assert.Zero(t, testutil.ToFloat64(m.ObservationsBuilt))
	})
}

func TestDedupeYears(t *testing.T) {
	assert.Equal(t, []int{2020, 2021, 2023}, dedupeYears([]int{2023, 2020, 2021, 2020, 2023}))
	assert.Empty(t, dedupeYears(nil))
}

func ExampleService_GetWeatherData() {
	// Wiring in production uses internal/fetch and station.Catalog; the
	// fakes here stand in for the archive and the station history.
	src := &fakeSource{
		bundled: []int{2023},
		data:    map[int][]byte{2023: yearFile(time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC))},
	}
	svc := NewService(src, &fakeDirectory{station: testStation()}, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())

	opts := DefaultOptions()
	opts.Years = []int{2023}
	opts.ConvertToLocal = false

	rows, _ := svc.GetWeatherData(context.Background(), "725030-14732", opts)
	for _, r := range rows {
		fmt.Printf("%s %s %.1f\n", r.ID, r.Time.Format(time.RFC3339), *r.Temp)
	}
	// Output: 725030-14732 2023-07-15T14:00:00Z 26.1
}
