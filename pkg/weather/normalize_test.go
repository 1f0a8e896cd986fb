package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weathervault/pkg/isd"
)

// goldenLine is a real LaGuardia observation: 2023-07-15 14:00Z, 26.1 °C,
// dew point 17.2 °C, wind 270° at 5.1 m/s, unlimited ceiling, 16093 m
// visibility, 1013.2 hPa.
const goldenLine = "0105725030147322023071514004+40750-073900FM-15+0003KLGA V0202701N005112200019N0160931N9+02611+01721101321"

func goldenRecord(t *testing.T) isd.Record {
	t.Helper()
	rec := isd.DecodeLine(goldenLine)
	require.Equal(t, "725030", rec[isd.FieldUSAF])
	return rec
}

func TestNormalizeGoldenLine(t *testing.T) {
	obs := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{})

	require.Len(t, obs, 1)
	o := obs[0]

	assert.Equal(t, "725030-14732", o.ID)
	assert.Equal(t, time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC), o.Time)

	require.NotNil(t, o.Temp)
	assert.InDelta(t, 26.1, *o.Temp, 1e-9)
	require.NotNil(t, o.DewPoint)
	assert.InDelta(t, 17.2, *o.DewPoint, 1e-9)
	require.NotNil(t, o.WS)
	assert.InDelta(t, 5.1, *o.WS, 1e-9)
	require.NotNil(t, o.WD)
	assert.Equal(t, 270, *o.WD)
	require.NotNil(t, o.AtmosPres)
	assert.InDelta(t, 1013.2, *o.AtmosPres, 1e-9)
	require.NotNil(t, o.CeilHgt)
	assert.Equal(t, 22000, *o.CeilHgt)
	require.NotNil(t, o.Visibility)
	assert.Equal(t, 16093, *o.Visibility)

	// August-Roche-Magnus for T=26.1, Td=17.2.
	require.NotNil(t, o.RH)
	assert.InDelta(t, 58.0, *o.RH, 0.05)

	assert.Nil(t, o.Station)
}

func TestNormalizeSentinels(t *testing.T) {
	tests := []struct {
		field    string
		sentinel string
	}{
		{isd.FieldWindDirection, "999"},
		{isd.FieldWindSpeed, "9999"},
		{isd.FieldCeilingHeight, "99999"},
		{isd.FieldVisibility, "999999"},
		{isd.FieldTemp, "+9999"},
		{isd.FieldDewPoint, "+9999"},
		{isd.FieldSeaLevelPres, "99999"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			rec := goldenRecord(t)
			rec[tt.field] = tt.sentinel

			obs := Normalize([]isd.Record{rec}, NormalizeConfig{})
			require.Len(t, obs, 1)

			switch tt.field {
			case isd.FieldWindDirection:
				assert.Nil(t, obs[0].WD)
			case isd.FieldWindSpeed:
				assert.Nil(t, obs[0].WS)
			case isd.FieldCeilingHeight:
				assert.Nil(t, obs[0].CeilHgt)
			case isd.FieldVisibility:
				assert.Nil(t, obs[0].Visibility)
			case isd.FieldTemp:
				assert.Nil(t, obs[0].Temp)
				assert.Nil(t, obs[0].RH, "rh needs temperature")
			case isd.FieldDewPoint:
				assert.Nil(t, obs[0].DewPoint)
				assert.Nil(t, obs[0].RH, "rh needs dew point")
			case isd.FieldSeaLevelPres:
				assert.Nil(t, obs[0].AtmosPres)
			}
		})
	}
}

func TestNormalizeScaling(t *testing.T) {
	rec := goldenRecord(t)
	rec[isd.FieldTemp] = "-0312" // -31.2 °C, signed tenths

	obs := Normalize([]isd.Record{rec}, NormalizeConfig{})
	require.Len(t, obs, 1)
	require.NotNil(t, obs[0].Temp)
	assert.InDelta(t, -31.2, *obs[0].Temp, 1e-9)
}

func TestRelativeHumidity(t *testing.T) {
	t.Run("saturation at temp equals dew point", func(t *testing.T) {
		rec := goldenRecord(t)
		rec[isd.FieldTemp] = "+0172"
		rec[isd.FieldDewPoint] = "+0172"

		obs := Normalize([]isd.Record{rec}, NormalizeConfig{})
		require.Len(t, obs, 1)
		require.NotNil(t, obs[0].RH)
		assert.InDelta(t, 100.0, *obs[0].RH, 0.01)
	})

	t.Run("dew point below temp stays under 100", func(t *testing.T) {
		for _, dew := range []string{"-0100", "+0000", "+0100", "+0250"} {
			rec := goldenRecord(t)
			rec[isd.FieldDewPoint] = dew

			obs := Normalize([]isd.Record{rec}, NormalizeConfig{})
			require.Len(t, obs, 1)
			require.NotNil(t, obs[0].RH)
			assert.GreaterOrEqual(t, *obs[0].RH, 0.0)
			assert.Less(t, *obs[0].RH, 100.0)
		}
	})
}

func TestNormalizeUnitConversion(t *testing.T) {
	t.Run("fahrenheit", func(t *testing.T) {
		obs := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{TempUnit: Fahrenheit})

		require.Len(t, obs, 1)
		require.NotNil(t, obs[0].Temp)
		assert.InDelta(t, 79.0, *obs[0].Temp, 1e-9) // 26.1*9/5+32 = 78.98 → 79.0
		require.NotNil(t, obs[0].DewPoint)
		assert.InDelta(t, 63.0, *obs[0].DewPoint, 1e-9)
	})

	t.Run("kelvin", func(t *testing.T) {
		obs := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{TempUnit: Kelvin})

		require.Len(t, obs, 1)
		require.NotNil(t, obs[0].Temp)
		assert.InDelta(t, 299.25, *obs[0].Temp, 1e-9)
	})

	t.Run("rh unaffected by unit", func(t *testing.T) {
		c := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{TempUnit: Celsius})
		f := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{TempUnit: Fahrenheit})

		require.NotNil(t, c[0].RH)
		require.NotNil(t, f[0].RH)
		assert.Equal(t, *c[0].RH, *f[0].RH)
	})

	t.Run("conversions invert within tolerance", func(t *testing.T) {
		for _, c := range []float64{-40.0, -0.1, 0.0, 26.1, 45.5} {
			f := convertTemp(c, Fahrenheit)
			assert.InDelta(t, c, (f-32)*5/9, 0.06, "fahrenheit round trip for %v", c)

			k := convertTemp(c, Kelvin)
			assert.InDelta(t, c, k-273.15, 0.01, "kelvin round trip for %v", c)
		}
	})
}

func TestNormalizeLocalTime(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("converted to station zone", func(t *testing.T) {
		obs := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{
			Location:       nyc,
			ConvertToLocal: true,
		})

		require.Len(t, obs, 1)
		assert.Equal(t, time.Date(2023, 7, 15, 10, 0, 0, 0, nyc), obs[0].Time)
		assert.Equal(t, "America/New_York", obs[0].Time.Location().String())
	})

	t.Run("kept UTC when conversion is off", func(t *testing.T) {
		obs := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{Location: nyc})

		require.Len(t, obs, 1)
		assert.Equal(t, time.UTC, obs[0].Time.Location())
	})
}

func TestNormalizeSubHourMinutes(t *testing.T) {
	rec := goldenRecord(t)
	rec[isd.FieldMinute] = "51"

	obs := Normalize([]isd.Record{rec}, NormalizeConfig{})
	require.Len(t, obs, 1)
	assert.Equal(t, time.Date(2023, 7, 15, 14, 51, 0, 0, time.UTC), obs[0].Time)
}

func TestNormalizeDropsIncompleteTimestamps(t *testing.T) {
	noHour := goldenRecord(t)
	delete(noHour, isd.FieldHour)

	badMonth := goldenRecord(t)
	badMonth[isd.FieldMonth] = "xx"

	obs := Normalize([]isd.Record{noHour, badMonth, goldenRecord(t)}, NormalizeConfig{})
	assert.Len(t, obs, 1)
}

func TestNormalizeStationBroadcast(t *testing.T) {
	lat, lon, elev := 40.75, -73.9, 3.0
	info := &StationInfo{
		Name: "LA GUARDIA AIRPORT", Country: "United States", State: "NY",
		ICAO: "KLGA", Lat: &lat, Lon: &lon, Elev: &elev,
	}

	recs := []isd.Record{goldenRecord(t), goldenRecord(t)}
	obs := Normalize(recs, NormalizeConfig{Station: info})

	require.Len(t, obs, 2)
	for _, o := range obs {
		assert.Same(t, info, o.Station)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil, NormalizeConfig{}))
	assert.Empty(t, Normalize([]isd.Record{}, NormalizeConfig{}))
}

func TestParseTempUnit(t *testing.T) {
	tests := []struct {
		in   string
		want TempUnit
		ok   bool
	}{
		{"c", Celsius, true},
		{"C", Celsius, true},
		{"celsius", Celsius, true},
		{"Celsius", Celsius, true},
		{"", Celsius, true},
		{"f", Fahrenheit, true},
		{"FAHRENHEIT", Fahrenheit, true},
		{"k", Kelvin, true},
		{"Kelvin", Kelvin, true},
		{"rankine", "", false},
		{"celcius", "", false},
	}

	for _, tt := range tests {
		t.Run("unit "+tt.in, func(t *testing.T) {
			got, err := ParseTempUnit(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnsAndRecord(t *testing.T) {
	assert.Equal(t, []string{
		"id", "time", "temp", "dew_point", "rh", "wd", "ws",
		"atmos_pres", "ceil_hgt", "visibility",
	}, Columns(false))

	withInfo := Columns(true)
	assert.Len(t, withInfo, 17)
	assert.Equal(t, "name", withInfo[10])
	assert.Equal(t, "elev", withInfo[16])

	obs := Normalize([]isd.Record{goldenRecord(t)}, NormalizeConfig{})
	require.Len(t, obs, 1)

	rec := obs[0].Record(false)
	require.Len(t, rec, len(Columns(false)))
	assert.Equal(t, "725030-14732", rec[0])
	assert.Equal(t, "26.1", rec[2])

	// Missing values render as empty strings, and a row without a
	// descriptor still fills the full station column set.
	empty := Observation{ID: "x", Time: time.Unix(0, 0).UTC()}
	assert.Len(t, empty.Record(true), len(Columns(true)))
	assert.Equal(t, "", empty.Record(false)[2])
}
