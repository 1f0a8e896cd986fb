package station

import "time"

// Station is one entry of the ISD station history file.
//
// CountryCode is the ISO 3166-1 alpha-2 code derived from the file's FIPS
// code; Country is the full name. Lat, Lon, and Elev are nil when the file
// leaves them blank or, for elevation, stores the -999 missing sentinel.
// TZ is the IANA zone resolved from the coordinates, empty when the lookup
// had nothing to go on.
type Station struct {
	ID          string     `json:"id"`
	USAF        string     `json:"usaf"`
	WBAN        string     `json:"wban"`
	Name        string     `json:"name"`
	CountryCode string     `json:"country_code"`
	Country     string     `json:"country"`
	State       string     `json:"state"`
	ICAO        string     `json:"icao"`
	Lat         *float64   `json:"lat"`
	Lon         *float64   `json:"lon"`
	Elev        *float64   `json:"elev"`
	Begin       time.Time  `json:"begin_date"`
	End         time.Time  `json:"end_date"`
	TZ          string     `json:"tz_name"`
}
