package weather

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// reconcile classifies explicitly requested years against the station's
// known availability before anything is fetched.
//
// When the bundled sample store already covers every requested year the
// check is skipped entirely: local bundled data is trusted without a remote
// inventory round trip, so offline use works. This also means bundled data
// is never cross-checked for staleness; see DESIGN.md.
//
// Otherwise: an empty inventory is fatal, a fully disjoint request is fatal
// with the available range in the message, and a partial overlap narrows
// the request to the fetchable years with a warning (suppressed by quiet).
func (s *Service) reconcile(ctx context.Context, stationID string, requested []int, quiet bool) ([]int, error) {
	if subsetOf(requested, s.source.BundledYears(stationID)) {
		return requested, nil
	}

	inventory, err := s.directory.YearsFor(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("inventory for station %s: %w", stationID, err)
	}
	if len(inventory) == 0 {
		return nil, fmt.Errorf("%w: station %s has no data inventory", ErrNoDataAvailable, stationID)
	}

	available := make(map[int]bool, len(inventory))
	for _, y := range inventory {
		available[y] = true
	}

	var unavailable, fetchable []int
	for _, y := range requested {
		if available[y] {
			fetchable = append(fetchable, y)
		} else {
			unavailable = append(unavailable, y)
		}
	}

	if len(unavailable) == 0 {
		return requested, nil
	}

	rangeDesc := fmt.Sprintf("%d-%d (%d years total)", inventory[0], inventory[len(inventory)-1], len(inventory))

	if len(fetchable) == 0 {
		return nil, fmt.Errorf("%w: years %s not available for station %s; available years are %s",
			ErrNoDataAvailable, formatYears(unavailable), stationID, rangeDesc)
	}

	if !quiet {
		s.logger.Warn("some requested years have no data, narrowing request",
			"station_id", stationID,
			"unavailable_years", formatYears(unavailable),
			"returned_years", formatYears(fetchable),
			"available_years", rangeDesc,
		)
	}
	return fetchable, nil
}

// subsetOf reports whether every wanted year appears in have.
func subsetOf(wanted, have []int) bool {
	if len(have) == 0 {
		return false
	}
	set := make(map[int]bool, len(have))
	for _, y := range have {
		set[y] = true
	}
	for _, y := range wanted {
		if !set[y] {
			return false
		}
	}
	return true
}

func formatYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
