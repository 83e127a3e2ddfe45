package catalog

import (
	"sort"
	"strings"
)

// Country pairs a display name with its ISO3 code.
type Country struct {
	Name string `json:"name"`
	ISO3 string `json:"iso3"`
}

// countryCodes maps lowercase country names to ISO3 codes.
var countryCodes = map[string]string{
	"afghanistan": "AFG", "albania": "ALB", "algeria": "DZA", "argentina": "ARG",
	"armenia": "ARM", "australia": "AUS", "austria": "AUT", "azerbaijan": "AZE",
	"bangladesh": "BGD", "belgium": "BEL", "brazil": "BRA", "bulgaria": "BGR",
	"canada": "CAN", "chile": "CHL", "china": "CHN", "colombia": "COL",
	"denmark": "DNK", "egypt": "EGY", "finland": "FIN", "france": "FRA",
	"germany": "DEU", "ghana": "GHA", "greece": "GRC", "india": "IND",
	"indonesia": "IDN", "iran": "IRN", "iraq": "IRQ", "ireland": "IRL",
	"israel": "ISR", "italy": "ITA", "japan": "JPN", "jordan": "JOR",
	"kenya": "KEN", "south korea": "KOR", "malaysia": "MYS", "mexico": "MEX",
	"netherlands": "NLD", "nigeria": "NGA", "norway": "NOR", "pakistan": "PAK",
	"poland": "POL", "portugal": "PRT", "russia": "RUS", "saudi arabia": "SAU",
	"south africa": "ZAF", "spain": "ESP", "sweden": "SWE", "switzerland": "CHE",
	"thailand": "THA", "turkey": "TUR", "ukraine": "UKR", "united kingdom": "GBR",
	"united states": "USA", "vietnam": "VNM",
}

// ResolveCountry maps a country name to its ISO3 code. Unknown inputs
// are assumed to already be a code and are passed through uppercased.
func ResolveCountry(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if code, ok := countryCodes[key]; ok {
		return code
	}
	return strings.ToUpper(key)
}

// Countries returns the known countries sorted by display name.
func Countries() []Country {
	out := make([]Country, 0, len(countryCodes))
	for name, code := range countryCodes {
		out = append(out, Country{Name: titleCase(name), ISO3: code})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// titleCase uppercases the first letter of each word; good enough for
// the fixed catalog names, which are plain ASCII.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
