package weather

import (
	"fmt"
	"math"
	"strings"
)

// TempUnit selects the output unit for temperature and dew point. Relative
// humidity and all other fields are never converted.
type TempUnit string

const (
	Celsius    TempUnit = "celsius"
	Fahrenheit TempUnit = "fahrenheit"
	Kelvin     TempUnit = "kelvin"
)

// ParseTempUnit normalizes a caller-supplied unit string. Accepts "c",
// "celsius", "f", "fahrenheit", "k", and "kelvin", case-insensitive; the
// empty string means Celsius. Anything else is ErrInvalidArgument.
func ParseTempUnit(s string) (TempUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	default:
		return "", fmt.Errorf("%w: temp unit %q (want c, celsius, f, fahrenheit, k, or kelvin)", ErrInvalidArgument, s)
	}
}

// convertTemp remaps a Celsius value into the requested unit. Fahrenheit is
// rounded to one decimal, Kelvin to two, matching the archive's tenth-degree
// resolution.
func convertTemp(c float64, unit TempUnit) float64 {
	switch unit {
	case Fahrenheit:
		return round1(c*9/5 + 32)
	case Kelvin:
		return math.Round((c+273.15)*100) / 100
	default:
		return c
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
