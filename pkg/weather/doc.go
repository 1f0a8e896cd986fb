// Package weather assembles multi-year, timezone-correct observation series
// from decoded ISD records.
//
// # Pipeline
//
// A retrieval runs: availability reconciliation → fetch plan → per-year
// fetch, decode, normalize → concatenate and sort → trim to the requested
// years → optional hourly resample. The byte source and station directory
// are injected collaborators; the service itself holds no state between
// calls.
//
// # Buffer Years
//
// When output times are converted to the station's local zone, an
// observation stamped 2023-01-01 02:00 UTC at a UTC-5 station belongs to
// calendar year 2022 locally. Requesting year Y with local conversion
// therefore fetches {Y-1, Y, Y+1} and trims the concatenated result back to
// the requested years, so boundary observations land in the right year and
// the extra years never appear in the output.
//
// # Missing Values
//
// The archive marks unreported values with all-nines sentinels (999 wind
// direction, 9999 temperature, 999999 visibility, and so on). Normalization
// maps sentinels to nil pointers and divides the survivors by their scale
// factor; no interpolation or quality filtering is applied beyond that.
// Relative humidity is the one derived quantity, computed from temperature
// and dew point with the August-Roche-Magnus approximation.
package weather
