package weather

import (
	"math"
	"strconv"
	"time"

	"github.com/couchcryptid/weathervault/pkg/isd"
)

// NormalizeConfig controls how decoded records become observations.
type NormalizeConfig struct {
	// Location is the station's zone for local-time output. Ignored unless
	// ConvertToLocal is set; nil keeps UTC either way.
	Location       *time.Location
	ConvertToLocal bool

	// TempUnit must already be normalized via ParseTempUnit. The zero value
	// behaves as Celsius.
	TempUnit TempUnit

	// Station, when non-nil, is broadcast identically onto every row.
	Station *StationInfo
}

// Normalize converts decoded records into the output schema: integer
// coercion, sentinel-to-null replacement, scaling, derived relative
// humidity, unit conversion, and time rendering. Records without a complete
// year/month/day/hour/minute timestamp are dropped; everything else
// degrades field-by-field to null rather than failing.
func Normalize(records []isd.Record, cfg NormalizeConfig) []Observation {
	out := make([]Observation, 0, len(records))
	for _, rec := range records {
		obs, ok := normalizeRecord(rec, cfg)
		if !ok {
			continue
		}
		out = append(out, obs)
	}
	return out
}

func normalizeRecord(rec isd.Record, cfg NormalizeConfig) (Observation, bool) {
	t, ok := recordTime(rec)
	if !ok {
		return Observation{}, false
	}
	if cfg.ConvertToLocal && cfg.Location != nil {
		t = t.In(cfg.Location)
	}

	temp := scaledValue(rec, isd.FieldTemp)
	dew := scaledValue(rec, isd.FieldDewPoint)

	obs := Observation{
		ID:         rec[isd.FieldUSAF] + "-" + rec[isd.FieldWBAN],
		Time:       t,
		Temp:       temp,
		DewPoint:   dew,
		RH:         relativeHumidity(temp, dew),
		WD:         intValue(rec, isd.FieldWindDirection),
		WS:         scaledValue(rec, isd.FieldWindSpeed),
		AtmosPres:  scaledValue(rec, isd.FieldSeaLevelPres),
		CeilHgt:    intValue(rec, isd.FieldCeilingHeight),
		Visibility: intValue(rec, isd.FieldVisibility),
		Station:    cfg.Station,
	}

	if cfg.TempUnit != "" && cfg.TempUnit != Celsius {
		if obs.Temp != nil {
			v := convertTemp(*obs.Temp, cfg.TempUnit)
			obs.Temp = &v
		}
		if obs.DewPoint != nil {
			v := convertTemp(*obs.DewPoint, cfg.TempUnit)
			obs.DewPoint = &v
		}
	}

	return obs, true
}

// recordTime builds the UTC instant from the record's timestamp fields.
// Sub-hour minute values are legal and preserved.
func recordTime(rec isd.Record) (time.Time, bool) {
	year, okY := parseInt(rec[isd.FieldYear])
	month, okMo := parseInt(rec[isd.FieldMonth])
	day, okD := parseInt(rec[isd.FieldDay])
	hour, okH := parseInt(rec[isd.FieldHour])
	minute, okMi := parseInt(rec[isd.FieldMinute])
	if !okY || !okMo || !okD || !okH || !okMi {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
}

// intValue coerces an unscaled field, mapping the all-nines sentinel to nil.
func intValue(rec isd.Record, name string) *int {
	v, ok := parseInt(rec[name])
	if !ok {
		return nil
	}
	if f, found := isd.FieldByName(name); found && f.Missing != 0 && v == f.Missing {
		return nil
	}
	return &v
}

// scaledValue coerces a scaled field, mapping the sentinel to nil and
// dividing by the field's scale factor to reach physical units.
func scaledValue(rec isd.Record, name string) *float64 {
	v, ok := parseInt(rec[name])
	if !ok {
		return nil
	}
	f, found := isd.FieldByName(name)
	if !found {
		return nil
	}
	if f.Missing != 0 && v == f.Missing {
		return nil
	}
	scaled := float64(v)
	if f.Scale > 1 {
		scaled /= f.Scale
	}
	return &scaled
}

// parseInt parses a raw field value, tolerating the explicit "+" sign the
// archive writes on signed fields. A missing or non-numeric value is simply
// absent, never an error.
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// relativeHumidity derives RH from temperature and dew point in Celsius
// using the August-Roche-Magnus approximation, rounded to one decimal.
// Equal temperature and dew point means saturation: exactly 100.0.
func relativeHumidity(temp, dewPoint *float64) *float64 {
	if temp == nil || dewPoint == nil {
		return nil
	}
	rh := round1(100 * magnus(*dewPoint) / magnus(*temp))
	return &rh
}

func magnus(c float64) float64 {
	return math.Exp(17.625 * c / (243.04 + c))
}
