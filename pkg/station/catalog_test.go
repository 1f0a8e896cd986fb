package station

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyCSV = `"USAF","WBAN","STATION NAME","CTRY","STATE","ICAO","LAT","LON","ELEV(M)","BEGIN","END"
"725030","14732","LA GUARDIA AIRPORT","US","NY","KLGA","+40.779","-73.880","+0003.4","19730101","20240315"
"103840","99999","BERLIN-TEMPELHOF","GM","","EDDI","+52.467","+13.402","+0048.0","19310101","20121231"
"999999","00001","NO ELEVATION","US","CA","","+36.000","-120.000","-0999.0","19800101","19901231"
"","00002","MISSING USAF","US","","","","","","",""
`

const inventoryCSV = `"USAF","WBAN","YEAR","JAN","FEB","MAR","APR","MAY","JUN","JUL","AUG","SEP","OCT","NOV","DEC"
"725030","14732","2023","744","672","744","720","744","720","744","744","720","744","720","744"
"725030","14732","2021","100","0","0","0","0","0","0","0","0","0","0","0"
"725030","14732","2022","744","672","744","720","744","720","744","744","720","744","720","744"
"725030","14732","2022","1","0","0","0","0","0","0","0","0","0","0","0"
"725030","14732","1999","0","0","0","0","0","0","0","0","0","0","0","0"
"103840","99999","2010","500","400","300","0","0","0","0","0","0","0","0","0"
`

type fakeFinder struct{}

func (fakeFinder) TimezoneName(lat, lon float64) string {
	if lon < 0 {
		return "America/New_York"
	}
	return "Europe/Berlin"
}

// newTestCatalog serves the fixture CSVs from an httptest server and
// returns the catalog plus a request counter per path.
func newTestCatalog(t *testing.T) (*Catalog, *atomic.Int32, *atomic.Int32) {
	t.Helper()

	var historyHits, inventoryHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /isd-history.csv", func(w http.ResponseWriter, _ *http.Request) {
		historyHits.Add(1)
		io.WriteString(w, historyCSV)
	})
	mux.HandleFunc("GET /isd-inventory.csv", func(w http.ResponseWriter, _ *http.Request) {
		inventoryHits.Add(1)
		io.WriteString(w, inventoryCSV)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalog(srv.URL, fakeFinder{}, logger), &historyHits, &inventoryHits
}

func TestCatalogLookup(t *testing.T) {
	c, _, _ := newTestCatalog(t)
	ctx := context.Background()

	t.Run("full descriptor", func(t *testing.T) {
		st, err := c.Lookup(ctx, "725030-14732")
		require.NoError(t, err)

		assert.Equal(t, "725030", st.USAF)
		assert.Equal(t, "14732", st.WBAN)
		assert.Equal(t, "LA GUARDIA AIRPORT", st.Name)
		assert.Equal(t, "US", st.CountryCode)
		assert.Equal(t, "United States", st.Country)
		assert.Equal(t, "NY", st.State)
		assert.Equal(t, "KLGA", st.ICAO)
		require.NotNil(t, st.Lat)
		assert.InDelta(t, 40.779, *st.Lat, 1e-9)
		require.NotNil(t, st.Elev)
		assert.InDelta(t, 3.4, *st.Elev, 1e-9)
		assert.Equal(t, time.Date(1973, 1, 1, 0, 0, 0, 0, time.UTC), st.Begin)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), st.End)
		assert.Equal(t, "America/New_York", st.TZ)
	})

	t.Run("fips code translated", func(t *testing.T) {
		st, err := c.Lookup(ctx, "103840-99999")
		require.NoError(t, err)
		assert.Equal(t, "DE", st.CountryCode, "FIPS GM is Germany")
		assert.Equal(t, "Germany", st.Country)
		assert.Equal(t, "Europe/Berlin", st.TZ)
	})

	t.Run("elevation sentinel is null", func(t *testing.T) {
		st, err := c.Lookup(ctx, "999999-00001")
		require.NoError(t, err)
		assert.Nil(t, st.Elev)
	})

	t.Run("unknown station", func(t *testing.T) {
		_, err := c.Lookup(ctx, "000000-00000")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCatalogStationsSkipsMalformedRows(t *testing.T) {
	c, _, _ := newTestCatalog(t)

	stations, err := c.Stations(context.Background())
	require.NoError(t, err)
	assert.Len(t, stations, 3, "row without USAF is dropped")
}

func TestCatalogYearsFor(t *testing.T) {
	c, _, _ := newTestCatalog(t)
	ctx := context.Background()

	t.Run("sorted unique years with observations", func(t *testing.T) {
		years, err := c.YearsFor(ctx, "725030-14732")
		require.NoError(t, err)
		assert.Equal(t, []int{2021, 2022, 2023}, years, "duplicate and all-zero rows collapse")
	})

	t.Run("absent station yields empty, not error", func(t *testing.T) {
		years, err := c.YearsFor(ctx, "000000-00000")
		require.NoError(t, err)
		assert.Empty(t, years)
	})
}

func TestCatalogSearch(t *testing.T) {
	c, _, _ := newTestCatalog(t)
	ctx := context.Background()

	t.Run("name substring", func(t *testing.T) {
		got, err := c.Search(ctx, Query{Name: "guardia"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "725030-14732", got[0].ID)
	})

	t.Run("country name substring", func(t *testing.T) {
		got, err := c.Search(ctx, Query{Country: "german"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "103840-99999", got[0].ID)
	})

	t.Run("iso code and state", func(t *testing.T) {
		got, err := c.Search(ctx, Query{CountryCode: "us", State: "ny"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "725030-14732", got[0].ID)
	})

	t.Run("coordinate ranges", func(t *testing.T) {
		got, err := c.Search(ctx, Query{
			LatRange: &Range{Min: 40, Max: 41},
			LonRange: &Range{Min: -75, Max: -72},
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "725030-14732", got[0].ID)
	})

	t.Run("recent data cutoff", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		defer SetClock(nil)

		got, err := c.Search(ctx, Query{HasRecentData: true})
		require.NoError(t, err)
		require.Len(t, got, 1, "only the station active past 2023-01-01")
		assert.Equal(t, "725030-14732", got[0].ID)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		got, err := c.Search(ctx, Query{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestCatalogCachingAndRefresh(t *testing.T) {
	c, historyHits, inventoryHits := newTestCatalog(t)
	ctx := context.Background()

	_, err := c.Stations(ctx)
	require.NoError(t, err)
	_, err = c.Stations(ctx)
	require.NoError(t, err)
	_, err = c.YearsFor(ctx, "725030-14732")
	require.NoError(t, err)
	_, err = c.YearsFor(ctx, "103840-99999")
	require.NoError(t, err)

	assert.Equal(t, int32(1), historyHits.Load())
	assert.Equal(t, int32(1), inventoryHits.Load())

	require.NoError(t, c.ForceRefresh(ctx))

	assert.Equal(t, int32(2), historyHits.Load())
	assert.Equal(t, int32(2), inventoryHits.Load())
}

func TestCatalogReadiness(t *testing.T) {
	t.Run("ready once history loads", func(t *testing.T) {
		c, _, _ := newTestCatalog(t)
		assert.NoError(t, c.CheckReadiness(context.Background()))
	})

	t.Run("unreachable catalog is not ready", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewCatalog(srv.URL, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		assert.Error(t, c.CheckReadiness(context.Background()))
	})
}
