// Package isd decodes the fixed-width record format of NOAA's Integrated
// Surface Database (ISD).
//
// # Data Source
//
// Raw year files live under https://www.ncei.noaa.gov/pub/data/noaa/ as
// {usaf}-{wban}-{year}.gz, one gzip-compressed text file per station and
// year, one observation per line. The format is described in the ISD format
// document at https://www.ncei.noaa.gov/data/global-hourly/doc/isd-format-document.pdf.
//
// # Record Layout
//
// Every line starts with a 105-character mandatory section laid out as fixed
// byte-width fields (station identifiers, timestamp, wind, ceiling,
// visibility, temperature, dew point, sea-level pressure, and their quality
// codes). Variable-length optional and remarks sections may follow; this
// package ignores everything past the mandatory section.
//
// Measurement conventions:
//
//	Scaled fields store tenths: air temperature "+0261" means 26.1 °C.
//	Wind speed is tenths of m/s, sea-level pressure tenths of hPa.
//	A ceiling height of 22000 means unlimited ceiling.
//	Missing values are all-nines at the field's width: 999 for wind
//	direction, 9999 for wind speed and temperatures, 99999 for ceiling and
//	pressure, 999999 for visibility.
//
// Decoding is deliberately forgiving: lines shorter than the mandatory
// section yield records with the trailing fields absent, and blank or
// malformed input never produces an error. Interpretation of the values
// (sentinel handling, scaling, derived quantities) is the caller's job; see
// the weather package.
package isd
