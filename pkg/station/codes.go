package station

import "sort"

// Country is one (ISO code, name) row of the country listing.
type Country struct {
	Code string `json:"country_code"`
	Name string `json:"country"`
}

// USState is one (postal code, name) row of the US state listing.
type USState struct {
	Code string `json:"state_code"`
	Name string `json:"state"`
}

// FIPSCountryName returns the country name for a FIPS 10-4 code.
func FIPSCountryName(code string) (string, bool) {
	name, ok := fipsCountryNames[code]
	return name, ok
}

// FIPSToISO converts a FIPS 10-4 country code to ISO 3166-1 alpha-2.
func FIPSToISO(code string) (string, bool) {
	iso, ok := fipsToISO[code]
	return iso, ok
}

// ISOToFIPS converts an ISO 3166-1 alpha-2 code back to FIPS 10-4. When
// several FIPS codes share an ISO code, the last entry of the upstream
// table wins.
func ISOToFIPS(code string) (string, bool) {
	fips, ok := isoToFIPS[code]
	return fips, ok
}

// ISOCountryName returns the country name for an ISO 3166-1 alpha-2 code.
func ISOCountryName(code string) (string, bool) {
	name, ok := isoCountryNames[code]
	return name, ok
}

// USStateName returns the name for a US state or territory postal code.
func USStateName(code string) (string, bool) {
	name, ok := usStateNames[code]
	return name, ok
}

// Countries lists every country appearing in the station history
// conventions as (ISO code, name) pairs, sorted by name.
func Countries() []Country {
	out := make([]Country, 0, len(fipsCountryNames))
	for fips, name := range fipsCountryNames {
		iso, ok := fipsToISO[fips]
		if !ok {
			continue
		}
		out = append(out, Country{Code: iso, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// USStates lists US states and territories sorted by postal code.
func USStates() []USState {
	out := make([]USState, 0, len(usStateNames))
	for code, name := range usStateNames {
		out = append(out, USState{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
