// Package station serves ISD station metadata: the downloadable station
// history and inventory catalog, the FIPS/ISO country code tables, and an
// ergonomic lookup registry over station names.
//
// The history file identifies stations by the USAF-WBAN pair and dates its
// coverage with %Y%m%d begin/end fields. Country codes in the file are FIPS
// 10-4; this package translates them to ISO 3166-1 alpha-2 and full names
// via the bundled tables, and resolves each station's IANA timezone from
// its coordinates.
package station
