package profilesrv

import (
	"regexp"
	"strings"

	"github.com/skovr/talentmatch/matching/profile"
)

// locationPatterns are tried in order against the lower-cased cleaned text;
// the first match wins over every later strategy
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`location[:\-]\s*([a-z ,]+)`),
	regexp.MustCompile(`work location[:\-]\s*([a-z ,]+)`),
	regexp.MustCompile(`based in ([a-z ,]+)`),
	regexp.MustCompile(`located in ([a-z ,]+)`),
	regexp.MustCompile(`working from ([a-z ,]+)`),
}

// cityGazetteer and countryGazetteer are fixed lower-case lookup lists,
// cities checked before countries
var cityGazetteer = []string{
	"bangalore", "bengaluru", "mumbai", "delhi", "hyderabad", "chennai", "pune",
	"kolkata", "gurgaon", "noida", "ahmedabad",
	"new york", "seattle", "san francisco", "london",
	"toronto", "singapore", "sydney", "dubai", "berlin",
}

var countryGazetteer = []string{
	"india", "united states", "usa", "canada", "uk", "germany",
	"australia", "singapore", "uae",
}

// ExtractLocation infers a location from the cleaned text. Strategies run in
// fixed precedence: explicit patterns, city gazetteer, country gazetteer, the
// word "remote", then the Not Specified sentinel.
func ExtractLocation(cleaned string) string {
	lower := strings.ToLower(cleaned)

	for _, pat := range locationPatterns {
		if m := pat.FindStringSubmatch(lower); m != nil {
			loc := strings.Trim(m[1], " .,:;")
			if loc != "" {
				return titleCase(loc)
			}
		}
	}

	for _, city := range cityGazetteer {
		if strings.Contains(lower, city) {
			return titleCase(city)
		}
	}

	for _, country := range countryGazetteer {
		if strings.Contains(lower, country) {
			return titleCase(country)
		}
	}

	if strings.Contains(lower, "remote") {
		return profile.LocationRemote
	}

	return profile.LocationNotSpecified
}

// titleCase upper-cases the first letter of each word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
