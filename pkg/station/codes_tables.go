package station

// Country and state code tables for the ISD station history file,
// transcribed from the NOAA country list
// (https://www.ncei.noaa.gov/pub/data/noaa/country-list.txt).
//
// The FIPS table carries historical quirks that must not be corrected:
// FIPS "AS" is Australia (American Samoa is FIPS "AQ"), FIPS "GM" is
// Germany, and several FIPS codes map onto the same ISO code. isoToFIPS
// is derived in table order, so the last FIPS entry for an ISO code wins.

type codePair struct {
	fips string
	iso  string
}

// fipsToISOTable maps FIPS 10-4 codes to ISO 3166-1 alpha-2 codes, in the
// upstream table's order.
var fipsToISOTable = []codePair{
	{"AA", "AW"},
	{"AC", "AG"},
	{"AF", "AF"},
	{"AG", "DZ"},
	{"AI", "AC"},
	{"AJ", "AZ"},
	{"AL", "AL"},
	{"AM", "AM"},
	{"AN", "AD"},
	{"AO", "AO"},
	{"AQ", "AS"},
	{"AR", "AR"},
	{"AS", "AU"},
	{"AT", "AU"},
	{"AU", "AT"},
	{"AV", "AI"},
	{"AY", "AQ"},
	{"AZ", "PT"},
	{"BA", "BH"},
	{"BB", "BB"},
	{"BC", "BW"},
	{"BD", "BM"},
	{"BE", "BE"},
	{"BF", "BS"},
	{"BG", "BD"},
	{"BH", "BZ"},
	{"BK", "BA"},
	{"BL", "BO"},
	{"BM", "MM"},
	{"BN", "BJ"},
	{"BO", "BY"},
	{"BP", "SB"},
	{"BR", "BR"},
	{"BT", "BT"},
	{"BU", "BG"},
	{"BV", "BV"},
	{"BX", "BN"},
	{"BY", "BI"},
	{"CA", "CA"},
	{"CB", "KH"},
	{"CD", "TD"},
	{"CE", "LK"},
	{"CF", "CG"},
	{"CG", "CD"},
	{"CH", "CN"},
	{"CI", "CL"},
	{"CJ", "KY"},
	{"CK", "CC"},
	{"CM", "CM"},
	{"CN", "KM"},
	{"CO", "CO"},
	{"CQ", "MP"},
	{"CR", "AU"},
	{"CS", "CR"},
	{"CT", "CF"},
	{"CU", "CU"},
	{"CV", "CV"},
	{"CW", "CK"},
	{"CY", "CY"},
	{"DA", "DK"},
	{"DJ", "DJ"},
	{"DO", "DM"},
	{"DR", "DO"},
	{"EC", "EC"},
	{"EG", "EG"},
	{"EI", "IE"},
	{"EK", "GQ"},
	{"EN", "EE"},
	{"ER", "ER"},
	{"ES", "SV"},
	{"ET", "ET"},
	{"EZ", "CZ"},
	{"FG", "GF"},
	{"FI", "FI"},
	{"FJ", "FJ"},
	{"FK", "FK"},
	{"FM", "FM"},
	{"FO", "FO"},
	{"FP", "PF"},
	{"FR", "FR"},
	{"GA", "GM"},
	{"GB", "GA"},
	{"GG", "GE"},
	{"GH", "GH"},
	{"GI", "GI"},
	{"GJ", "GD"},
	{"GK", "GG"},
	{"GL", "GL"},
	{"GM", "DE"},
	{"GP", "GP"},
	{"GQ", "GU"},
	{"GR", "GR"},
	{"GT", "GT"},
	{"GV", "GN"},
	{"GY", "GY"},
	{"GZ", "PS"},
	{"HA", "HT"},
	{"HK", "HK"},
	{"HO", "HN"},
	{"HR", "HR"},
	{"HU", "HU"},
	{"IC", "IS"},
	{"ID", "ID"},
	{"IM", "IM"},
	{"IN", "IN"},
	{"IO", "IO"},
	{"IR", "IR"},
	{"IS", "IL"},
	{"IT", "IT"},
	{"IV", "CI"},
	{"IZ", "IQ"},
	{"JA", "JP"},
	{"JE", "JE"},
	{"JM", "JM"},
	{"JN", "SJ"},
	{"JO", "JO"},
	{"KE", "KE"},
	{"KG", "KG"},
	{"KN", "KP"},
	{"KR", "KI"},
	{"KS", "KR"},
	{"KT", "CX"},
	{"KU", "KW"},
	{"KV", "XK"},
	{"KZ", "KZ"},
	{"LA", "LA"},
	{"LE", "LB"},
	{"LG", "LV"},
	{"LH", "LT"},
	{"LI", "LR"},
	{"LO", "SK"},
	{"LS", "LI"},
	{"LT", "LS"},
	{"LU", "LU"},
	{"LY", "LY"},
	{"MA", "MG"},
	{"MB", "MQ"},
	{"MC", "MO"},
	{"MD", "MD"},
	{"MF", "YT"},
	{"MG", "MN"},
	{"MH", "MS"},
	{"MI", "MW"},
	{"MJ", "ME"},
	{"MK", "MK"},
	{"ML", "ML"},
	{"MM", "MM"},
	{"MN", "MC"},
	{"MO", "MA"},
	{"MP", "MU"},
	{"MR", "MR"},
	{"MT", "MT"},
	{"MU", "OM"},
	{"MV", "MV"},
	{"MX", "MX"},
	{"MY", "MY"},
	{"MZ", "MZ"},
	{"NC", "NC"},
	{"NE", "NU"},
	{"NF", "NF"},
	{"NG", "NE"},
	{"NH", "VU"},
	{"NI", "NG"},
	{"NL", "NL"},
	{"NO", "NO"},
	{"NP", "NP"},
	{"NR", "NR"},
	{"NS", "SR"},
	{"NU", "NI"},
	{"NZ", "NZ"},
	{"OD", "SS"},
	{"PA", "PY"},
	{"PC", "PN"},
	{"PE", "PE"},
	{"PG", "PG"},
	{"PK", "PK"},
	{"PL", "PL"},
	{"PM", "PA"},
	{"PO", "PT"},
	{"PP", "PG"},
	{"PS", "PW"},
	{"PU", "GW"},
	{"QA", "QA"},
	{"RE", "RE"},
	{"RI", "RS"},
	{"RM", "MH"},
	{"RO", "RO"},
	{"RP", "PH"},
	{"RQ", "PR"},
	{"RS", "RU"},
	{"RW", "RW"},
	{"SA", "SA"},
	{"SB", "PM"},
	{"SC", "KN"},
	{"SE", "SC"},
	{"SF", "ZA"},
	{"SG", "SN"},
	{"SH", "SH"},
	{"SI", "SI"},
	{"SL", "SL"},
	{"SM", "SM"},
	{"SN", "SG"},
	{"SO", "SO"},
	{"SP", "ES"},
	{"SR", "RS"},
	{"ST", "LC"},
	{"SU", "SD"},
	{"SV", "SJ"},
	{"SW", "SE"},
	{"SX", "GS"},
	{"SY", "SY"},
	{"SZ", "CH"},
	{"TC", "AE"},
	{"TD", "TT"},
	{"TH", "TH"},
	{"TI", "TJ"},
	{"TK", "TC"},
	{"TL", "TK"},
	{"TN", "TO"},
	{"TO", "TG"},
	{"TP", "ST"},
	{"TS", "TN"},
	{"TU", "TR"},
	{"TV", "TV"},
	{"TW", "TW"},
	{"TX", "TM"},
	{"TZ", "TZ"},
	{"UG", "UG"},
	{"UK", "GB"},
	{"UP", "UA"},
	{"US", "US"},
	{"UV", "BF"},
	{"UY", "UY"},
	{"UZ", "UZ"},
	{"VC", "VC"},
	{"VE", "VE"},
	{"VI", "VG"},
	{"VM", "VN"},
	{"VQ", "VI"},
	{"VT", "VA"},
	{"WA", "NA"},
	{"WE", "PS"},
	{"WF", "WF"},
	{"WI", "EH"},
	{"WQ", "UM"},
	{"WS", "WS"},
	{"WZ", "SZ"},
	{"YM", "YE"},
	{"ZA", "ZM"},
	{"ZI", "ZW"},
	{"ZM", "WS"},
}

// fipsCountryNames maps FIPS 10-4 codes to country names as they appear
// in the NOAA country list.
var fipsCountryNames = map[string]string{
	"AA": "Aruba",
	"AC": "Antigua and Barbuda",
	"AF": "Afghanistan",
	"AG": "Algeria",
	"AI": "Ascension Island",
	"AJ": "Azerbaijan",
	"AL": "Albania",
	"AM": "Armenia",
	"AN": "Andorra",
	"AO": "Angola",
	"AQ": "American Samoa",
	"AR": "Argentina",
	"AS": "Australia",
	"AT": "Ashmore and Cartier Islands",
	"AU": "Austria",
	"AV": "Anguilla",
	"AY": "Antarctica",
	"AZ": "Azores",
	"BA": "Bahrain",
	"BB": "Barbados",
	"BC": "Botswana",
	"BD": "Bermuda",
	"BE": "Belgium",
	"BF": "Bahamas",
	"BG": "Bangladesh",
	"BH": "Belize",
	"BK": "Bosnia and Herzegovina",
	"BL": "Bolivia",
	"BM": "Burma",
	"BN": "Benin",
	"BO": "Belarus",
	"BP": "Solomon Islands",
	"BR": "Brazil",
	"BT": "Bhutan",
	"BU": "Bulgaria",
	"BV": "Bouvet Island",
	"BX": "Brunei",
	"BY": "Burundi",
	"CA": "Canada",
	"CB": "Cambodia",
	"CD": "Chad",
	"CE": "Sri Lanka",
	"CF": "Congo",
	"CG": "Zaire",
	"CH": "China",
	"CI": "Chile",
	"CJ": "Cayman Islands",
	"CK": "Cocos (Keeling) Islands",
	"CM": "Cameroon",
	"CN": "Comoros",
	"CO": "Colombia",
	"CQ": "Northern Mariana Islands",
	"CR": "Coral Sea Islands",
	"CS": "Costa Rica",
	"CT": "Central African Republic",
	"CU": "Cuba",
	"CV": "Cape Verde",
	"CW": "Cook Islands",
	"CY": "Cyprus",
	"DA": "Denmark",
	"DJ": "Djibouti",
	"DO": "Dominica",
	"DR": "Dominican Republic",
	"EC": "Ecuador",
	"EG": "Egypt",
	"EI": "Ireland",
	"EK": "Equatorial Guinea",
	"EN": "Estonia",
	"ER": "Eritrea",
	"ES": "El Salvador",
	"ET": "Ethiopia",
	"EZ": "Czech Republic",
	"FG": "French Guiana",
	"FI": "Finland",
	"FJ": "Fiji",
	"FK": "Falkland Islands",
	"FM": "Micronesia",
	"FO": "Faroe Islands",
	"FP": "French Polynesia",
	"FR": "France",
	"GA": "Gambia",
	"GB": "Gabon",
	"GG": "Georgia",
	"GH": "Ghana",
	"GI": "Gibraltar",
	"GJ": "Grenada",
	"GK": "Guernsey",
	"GL": "Greenland",
	"GM": "Germany",
	"GP": "Guadeloupe",
	"GQ": "Guam",
	"GR": "Greece",
	"GT": "Guatemala",
	"GV": "Guinea",
	"GY": "Guyana",
	"GZ": "Gaza Strip",
	"HA": "Haiti",
	"HK": "Hong Kong",
	"HO": "Honduras",
	"HR": "Croatia",
	"HU": "Hungary",
	"IC": "Iceland",
	"ID": "Indonesia",
	"IM": "Isle of Man",
	"IN": "India",
	"IO": "British Indian Ocean Territory",
	"IR": "Iran",
	"IS": "Israel",
	"IT": "Italy",
	"IV": "Cote d'Ivoire",
	"IZ": "Iraq",
	"JA": "Japan",
	"JE": "Jersey",
	"JM": "Jamaica",
	"JN": "Jan Mayen",
	"JO": "Jordan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KN": "North Korea",
	"KR": "Kiribati",
	"KS": "South Korea",
	"KT": "Christmas Island",
	"KU": "Kuwait",
	"KV": "Kosovo",
	"KZ": "Kazakhstan",
	"LA": "Laos",
	"LE": "Lebanon",
	"LG": "Latvia",
	"LH": "Lithuania",
	"LI": "Liberia",
	"LO": "Slovakia",
	"LS": "Liechtenstein",
	"LT": "Lesotho",
	"LU": "Luxembourg",
	"LY": "Libya",
	"MA": "Madagascar",
	"MB": "Martinique",
	"MC": "Macau",
	"MD": "Moldova",
	"MF": "Mayotte",
	"MG": "Mongolia",
	"MH": "Montserrat",
	"MI": "Malawi",
	"MJ": "Montenegro",
	"MK": "North Macedonia",
	"ML": "Mali",
	"MM": "Burma (Myanmar)",
	"MN": "Monaco",
	"MO": "Morocco",
	"MP": "Mauritius",
	"MR": "Mauritania",
	"MT": "Malta",
	"MU": "Oman",
	"MV": "Maldives",
	"MX": "Mexico",
	"MY": "Malaysia",
	"MZ": "Mozambique",
	"NC": "New Caledonia",
	"NE": "Niue",
	"NF": "Norfolk Island",
	"NG": "Niger",
	"NH": "Vanuatu",
	"NI": "Nigeria",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NR": "Nauru",
	"NS": "Suriname",
	"NU": "Nicaragua",
	"NZ": "New Zealand",
	"OD": "South Sudan",
	"PA": "Paraguay",
	"PC": "Pitcairn Islands",
	"PE": "Peru",
	"PG": "Spratly Islands",
	"PK": "Pakistan",
	"PL": "Poland",
	"PM": "Panama",
	"PO": "Portugal",
	"PP": "Papua New Guinea",
	"PS": "Palau",
	"PU": "Guinea-Bissau",
	"QA": "Qatar",
	"RE": "Reunion",
	"RI": "Serbia",
	"RM": "Marshall Islands",
	"RO": "Romania",
	"RP": "Philippines",
	"RQ": "Puerto Rico",
	"RS": "Russia",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SB": "St. Pierre and Miquelon",
	"SC": "St. Kitts and Nevis",
	"SE": "Seychelles",
	"SF": "South Africa",
	"SG": "Senegal",
	"SH": "St. Helena",
	"SI": "Slovenia",
	"SL": "Sierra Leone",
	"SM": "San Marino",
	"SN": "Singapore",
	"SO": "Somalia",
	"SP": "Spain",
	"SR": "Serbia",
	"ST": "St. Lucia",
	"SU": "Sudan",
	"SV": "Svalbard",
	"SW": "Sweden",
	"SX": "South Georgia",
	"SY": "Syria",
	"SZ": "Switzerland",
	"TC": "United Arab Emirates",
	"TD": "Trinidad and Tobago",
	"TH": "Thailand",
	"TI": "Tajikistan",
	"TK": "Turks and Caicos Islands",
	"TL": "Tokelau",
	"TN": "Tonga",
	"TO": "Togo",
	"TP": "Sao Tome and Principe",
	"TS": "Tunisia",
	"TU": "Turkey",
	"TV": "Tuvalu",
	"TW": "Taiwan",
	"TX": "Turkmenistan",
	"TZ": "Tanzania",
	"UG": "Uganda",
	"UK": "United Kingdom",
	"UP": "Ukraine",
	"US": "United States",
	"UV": "Burkina Faso",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VC": "St. Vincent and the Grenadines",
	"VE": "Venezuela",
	"VI": "Virgin Islands (British)",
	"VM": "Vietnam",
	"VQ": "Virgin Islands (U.S.)",
	"VT": "Vatican City",
	"WA": "Namibia",
	"WE": "West Bank",
	"WF": "Wallis and Futuna",
	"WI": "Western Sahara",
	"WQ": "Wake Island",
	"WS": "Western Samoa",
	"WZ": "Eswatini",
	"YM": "Yemen",
	"ZA": "Zambia",
	"ZI": "Zimbabwe",
	"ZM": "Samoa",
}

// isoCountryNames maps ISO 3166-1 alpha-2 codes to country names.
var isoCountryNames = map[string]string{
	"AW": "Aruba",
	"AF": "Afghanistan",
	"AO": "Angola",
	"AL": "Albania",
	"AD": "Andorra",
	"AE": "United Arab Emirates",
	"AR": "Argentina",
	"AM": "Armenia",
	"AS": "American Samoa",
	"AG": "Antigua & Barbuda",
	"AU": "Australia",
	"AT": "Austria",
	"AZ": "Azerbaijan",
	"BI": "Burundi",
	"BE": "Belgium",
	"BJ": "Benin",
	"BF": "Burkina Faso",
	"BD": "Bangladesh",
	"BG": "Bulgaria",
	"BH": "Bahrain",
	"BS": "Bahamas",
	"BA": "Bosnia & Herzegovina",
	"BY": "Belarus",
	"BZ": "Belize",
	"BM": "Bermuda",
	"BO": "Bolivia",
	"BR": "Brazil",
	"BB": "Barbados",
	"BN": "Brunei",
	"BT": "Bhutan",
	"BW": "Botswana",
	"CF": "Central African Republic",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CN": "China",
	"CI": "Côte d'Ivoire",
	"CM": "Cameroon",
	"CD": "Congo (DRC)",
	"CG": "Congo (Republic)",
	"CO": "Colombia",
	"KM": "Comoros",
	"CV": "Cape Verde",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CW": "Curaçao",
	"KY": "Cayman Islands",
	"CY": "Cyprus",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DJ": "Djibouti",
	"DM": "Dominica",
	"DK": "Denmark",
	"DO": "Dominican Republic",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EG": "Egypt",
	"ER": "Eritrea",
	"ES": "Spain",
	"EE": "Estonia",
	"ET": "Ethiopia",
	"FI": "Finland",
	"FJ": "Fiji",
	"FR": "France",
	"FO": "Faroe Islands",
	"FM": "Micronesia",
	"GA": "Gabon",
	"GB": "United Kingdom",
	"GE": "Georgia",
	"GH": "Ghana",
	"GI": "Gibraltar",
	"GN": "Guinea",
	"GM": "Gambia",
	"GW": "Guinea-Bissau",
	"GQ": "Equatorial Guinea",
	"GR": "Greece",
	"GD": "Grenada",
	"GL": "Greenland",
	"GT": "Guatemala",
	"GU": "Guam",
	"GY": "Guyana",
	"HK": "Hong Kong",
	"HN": "Honduras",
	"HR": "Croatia",
	"HT": "Haiti",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IM": "Isle of Man",
	"IN": "India",
	"IE": "Ireland",
	"IR": "Iran",
	"IQ": "Iraq",
	"IS": "Iceland",
	"IL": "Israel",
	"IT": "Italy",
	"JM": "Jamaica",
	"JO": "Jordan",
	"JP": "Japan",
	"KZ": "Kazakhstan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KH": "Cambodia",
	"KI": "Kiribati",
	"KN": "St. Kitts & Nevis",
	"KR": "South Korea",
	"KW": "Kuwait",
	"LA": "Laos",
	"LB": "Lebanon",
	"LR": "Liberia",
	"LY": "Libya",
	"LC": "St. Lucia",
	"LI": "Liechtenstein",
	"LK": "Sri Lanka",
	"LS": "Lesotho",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MO": "Macao",
	"MF": "St. Martin",
	"MA": "Morocco",
	"MC": "Monaco",
	"MD": "Moldova",
	"MG": "Madagascar",
	"MV": "Maldives",
	"MX": "Mexico",
	"MH": "Marshall Islands",
	"MK": "North Macedonia",
	"ML": "Mali",
	"MT": "Malta",
	"MM": "Myanmar",
	"ME": "Montenegro",
	"MN": "Mongolia",
	"MP": "Northern Mariana Islands",
	"MZ": "Mozambique",
	"MR": "Mauritania",
	"MU": "Mauritius",
	"MW": "Malawi",
	"MY": "Malaysia",
	"NA": "Namibia",
	"NC": "New Caledonia",
	"NE": "Niger",
	"NG": "Nigeria",
	"NI": "Nicaragua",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NR": "Nauru",
	"NZ": "New Zealand",
	"OM": "Oman",
	"PK": "Pakistan",
	"PA": "Panama",
	"PE": "Peru",
	"PH": "Philippines",
	"PW": "Palau",
	"PG": "Papua New Guinea",
	"PL": "Poland",
	"PR": "Puerto Rico",
	"KP": "North Korea",
	"PT": "Portugal",
	"PY": "Paraguay",
	"PS": "Palestine",
	"PF": "French Polynesia",
	"QA": "Qatar",
	"RO": "Romania",
	"RU": "Russia",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SD": "Sudan",
	"SN": "Senegal",
	"SG": "Singapore",
	"SB": "Solomon Islands",
	"SL": "Sierra Leone",
	"SV": "El Salvador",
	"SM": "San Marino",
	"SO": "Somalia",
	"RS": "Serbia",
	"SS": "South Sudan",
	"ST": "São Tomé & Príncipe",
	"SR": "Suriname",
	"SK": "Slovakia",
	"SI": "Slovenia",
	"SE": "Sweden",
	"SZ": "Eswatini",
	"SX": "Sint Maarten",
	"SC": "Seychelles",
	"SY": "Syria",
	"TC": "Turks & Caicos Islands",
	"TD": "Chad",
	"TG": "Togo",
	"TH": "Thailand",
	"TJ": "Tajikistan",
	"TM": "Turkmenistan",
	"TL": "East Timor",
	"TO": "Tonga",
	"TT": "Trinidad & Tobago",
	"TN": "Tunisia",
	"TR": "Turkey",
	"TV": "Tuvalu",
	"TZ": "Tanzania",
	"UG": "Uganda",
	"UA": "Ukraine",
	"UY": "Uruguay",
	"US": "United States",
	"UZ": "Uzbekistan",
	"VC": "St. Vincent & Grenadines",
	"VE": "Venezuela",
	"VG": "British Virgin Islands",
	"VI": "U.S. Virgin Islands",
	"VN": "Vietnam",
	"VU": "Vanuatu",
	"WS": "Samoa",
	"YE": "Yemen",
	"ZA": "South Africa",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}

// usStateNames maps US state and territory postal codes to names.
var usStateNames = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DE": "Delaware",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
	"DC": "District of Columbia",
	"AS": "American Samoa",
	"GU": "Guam",
	"MP": "Northern Mariana Islands",
	"PR": "Puerto Rico",
	"VI": "U.S. Virgin Islands",
}

var (
	fipsToISO = func() map[string]string {
		m := make(map[string]string, len(fipsToISOTable))
		for _, p := range fipsToISOTable {
			m[p.fips] = p.iso
		}
		return m
	}()

	isoToFIPS = func() map[string]string {
		m := make(map[string]string, len(fipsToISOTable))
		for _, p := range fipsToISOTable {
			m[p.iso] = p.fips
		}
		return m
	}()
)
