package normalize

import (
	"strings"

	"golang.org/x/text/language"
)

// countryNames is the closed set of countries with theme-park destinations
// we render by name.
var countryNames = map[string]string{
	"AE": "United Arab Emirates",
	"AT": "Austria",
	"AU": "Australia",
	"BE": "Belgium",
	"BR": "Brazil",
	"CA": "Canada",
	"CH": "Switzerland",
	"CN": "China",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DK": "Denmark",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"HK": "Hong Kong",
	"IE": "Ireland",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"MX": "Mexico",
	"MY": "Malaysia",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PL": "Poland",
	"PT": "Portugal",
	"QA": "Qatar",
	"SA": "Saudi Arabia",
	"SE": "Sweden",
	"SG": "Singapore",
	"TH": "Thailand",
	"TW": "Taiwan",
	"US": "United States",
}

// CountryName expands an ISO 3166 country code to a display name. Alpha-3
// codes are mapped to their alpha-2 form first. Codes outside the known set
// are returned uppercased.
func CountryName(code string) string {
	up := strings.ToUpper(strings.TrimSpace(code))
	if name, ok := countryNames[up]; ok {
		return name
	}
	if len(up) == 3 {
		if r, err := language.ParseRegion(up); err == nil {
			if name, ok := countryNames[r.String()]; ok {
				return name
			}
		}
	}
	return up
}
