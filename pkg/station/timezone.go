package station

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// TimezoneFinder resolves an IANA zone name from station coordinates.
// The empty string means no zone could be determined. The interface exists
// so tests can run without loading the embedded polygon data.
type TimezoneFinder interface {
	TimezoneName(lat, lon float64) string
}

// tzfFinder backs TimezoneFinder with tzf's embedded timezone polygons.
type tzfFinder struct {
	finder tzf.F
}

// NewTimezoneFinder builds the default coordinate-to-zone resolver.
func NewTimezoneFinder() (TimezoneFinder, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("load timezone data: %w", err)
	}
	return &tzfFinder{finder: f}, nil
}

func (t *tzfFinder) TimezoneName(lat, lon float64) string {
	// tzf takes longitude first.
	return t.finder.GetTimezoneName(lon, lat)
}
