package weather

import (
	"strconv"
	"time"
)

// StationInfo is the station descriptor broadcast onto every row of a
// retrieval when the caller asks for station columns.
type StationInfo struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	State   string   `json:"state"`
	ICAO    string   `json:"icao"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Elev    *float64 `json:"elev"`
}

// Observation is one row of the output schema. Nil pointers are missing
// values: either the record carried the all-nines sentinel or the field was
// absent from the raw line. Time is UTC, or station-local when the caller
// asked for local conversion.
type Observation struct {
	ID         string       `json:"id"`
	Time       time.Time    `json:"time"`
	Temp       *float64     `json:"temp"`
	DewPoint   *float64     `json:"dew_point"`
	RH         *float64     `json:"rh"`
	WD         *int         `json:"wd"`
	WS         *float64     `json:"ws"`
	AtmosPres  *float64     `json:"atmos_pres"`
	CeilHgt    *int         `json:"ceil_hgt"`
	Visibility *int         `json:"visibility"`
	Station    *StationInfo `json:"station,omitempty"`
}

// baseColumns is the fixed output column order. Station descriptor columns,
// when requested, always follow in stationColumns order.
var baseColumns = []string{
	"id", "time", "temp", "dew_point", "rh", "wd", "ws",
	"atmos_pres", "ceil_hgt", "visibility",
}

var stationColumns = []string{"name", "country", "state", "icao", "lat", "lon", "elev"}

// Columns returns the output column names in their fixed order. The schema
// is stable even for empty results: encoders emit this exact header whether
// or not any rows exist.
func Columns(inclStationInfo bool) []string {
	cols := make([]string, 0, len(baseColumns)+len(stationColumns))
	cols = append(cols, baseColumns...)
	if inclStationInfo {
		cols = append(cols, stationColumns...)
	}
	return cols
}

// Record renders the observation as strings in Columns order, empty string
// for missing values. Used by the CSV encoders in the HTTP API and CLI.
func (o Observation) Record(inclStationInfo bool) []string {
	rec := []string{
		o.ID,
		o.Time.Format(time.RFC3339),
		formatFloat(o.Temp),
		formatFloat(o.DewPoint),
		formatFloat(o.RH),
		formatInt(o.WD),
		formatFloat(o.WS),
		formatFloat(o.AtmosPres),
		formatInt(o.CeilHgt),
		formatInt(o.Visibility),
	}
	if !inclStationInfo {
		return rec
	}
	if o.Station == nil {
		return append(rec, "", "", "", "", "", "", "")
	}
	return append(rec,
		o.Station.Name,
		o.Station.Country,
		o.Station.State,
		o.Station.ICAO,
		formatFloat(o.Station.Lat),
		formatFloat(o.Station.Lon),
		formatFloat(o.Station.Elev),
	)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
