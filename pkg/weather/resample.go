package weather

import "time"

// resampleHourly reduces observations to a complete hourly grid: each row's
// time is truncated to the start of its wall-clock hour, the first (earliest
// original sub-hour) row per hour wins, and every hour boundary from Jan 1
// 00:00 of the minimum year through Dec 31 23:00 of the maximum year whose
// year is requested appears in the output. Hours without a source
// observation carry null measurements and the station id. Input must
// already be time-sorted; empty input is returned unchanged.
func resampleHourly(rows []Observation, years []int, loc *time.Location) []Observation {
	if len(rows) == 0 || len(years) == 0 {
		return rows
	}

	stationID := rows[0].ID
	stationInfo := rows[0].Station

	firstPerHour := make(map[int64]Observation, len(rows))
	for _, r := range rows {
		hour := truncateToHour(r.Time)
		key := hour.Unix()
		if _, taken := firstPerHour[key]; taken {
			continue
		}
		r.Time = hour
		firstPerHour[key] = r
	}

	minYear, maxYear := years[0], years[0]
	requested := make(map[int]bool, len(years))
	for _, y := range years {
		requested[y] = true
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	start := time.Date(minYear, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(maxYear, time.December, 31, 23, 0, 0, 0, loc)

	out := make([]Observation, 0, len(firstPerHour))
	for t := start; !t.After(end); t = t.Add(time.Hour) {
		if !requested[t.Year()] {
			continue
		}
		if r, ok := firstPerHour[t.Unix()]; ok {
			r.Time = t
			out = append(out, r)
			continue
		}
		out = append(out, Observation{ID: stationID, Time: t, Station: stationInfo})
	}
	return out
}

// truncateToHour zeroes the sub-hour wall-clock components in the time's
// own zone. time.Truncate would round on absolute duration since the epoch,
// which misbehaves in zones with non-whole-hour offsets.
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
