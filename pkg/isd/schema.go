package isd

// Field describes one mandatory-section column: its name, fixed byte width,
// the all-nines sentinel that marks a missing value (0 for fields that have
// none), and the divisor that converts the stored integer to physical units
// (0 for unscaled fields).
type Field struct {
	Name    string
	Width   int
	Missing int
	Scale   float64
}

// MandatorySectionLen is the byte length of the fixed mandatory section.
const MandatorySectionLen = 105

// Names of the mandatory-section fields consumed downstream. Quality-code
// and bookkeeping fields are addressed by their literal names in Fields.
const (
	FieldTotalChars    = "total_chars"
	FieldUSAF          = "usaf"
	FieldWBAN          = "wban"
	FieldYear          = "year"
	FieldMonth         = "month"
	FieldDay           = "day"
	FieldHour          = "hour"
	FieldMinute        = "minute"
	FieldWindDirection = "wind_direction"
	FieldWindSpeed     = "wind_speed"
	FieldCeilingHeight = "ceiling_height"
	FieldVisibility    = "visibility"
	FieldTemp          = "temp"
	FieldDewPoint      = "dew_point"
	FieldSeaLevelPres  = "sea_level_pressure"
)

// Fields is the mandatory section in wire order. Widths sum to
// MandatorySectionLen; offsets are implied by the running total.
// Sentinels and scale factors follow the ISD format document.
var Fields = []Field{
	{Name: FieldTotalChars, Width: 4},
	{Name: FieldUSAF, Width: 6},
	{Name: FieldWBAN, Width: 5},
	{Name: FieldYear, Width: 4},
	{Name: FieldMonth, Width: 2},
	{Name: FieldDay, Width: 2},
	{Name: FieldHour, Width: 2},
	{Name: FieldMinute, Width: 2},
	{Name: "data_source", Width: 1},
	{Name: "latitude", Width: 6, Scale: 1000},
	{Name: "longitude", Width: 7, Scale: 1000},
	{Name: "report_type", Width: 5},
	{Name: "elevation", Width: 5, Scale: 1},
	{Name: "call_letters", Width: 5},
	{Name: "qc_process", Width: 4},
	{Name: FieldWindDirection, Width: 3, Missing: 999},
	{Name: "wind_direction_qc", Width: 1},
	{Name: "wind_type", Width: 1},
	{Name: FieldWindSpeed, Width: 4, Missing: 9999, Scale: 10},
	{Name: "wind_speed_qc", Width: 1},
	{Name: FieldCeilingHeight, Width: 5, Missing: 99999},
	{Name: "ceiling_height_qc", Width: 1},
	{Name: "ceiling_determination", Width: 1},
	{Name: "cavok", Width: 1},
	{Name: FieldVisibility, Width: 6, Missing: 999999},
	{Name: "visibility_qc", Width: 1},
	{Name: "visibility_variability", Width: 1},
	{Name: "visibility_variability_qc", Width: 1},
	{Name: FieldTemp, Width: 5, Missing: 9999, Scale: 10},
	{Name: "temp_qc", Width: 1},
	{Name: FieldDewPoint, Width: 5, Missing: 9999, Scale: 10},
	{Name: "dew_point_qc", Width: 1},
	{Name: FieldSeaLevelPres, Width: 5, Missing: 99999, Scale: 10},
	{Name: "sea_level_pressure_qc", Width: 1},
}

// FieldByName returns the layout entry for a field name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
