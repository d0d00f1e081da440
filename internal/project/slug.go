package project

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a project name: lower-cased,
// accents stripped, every run of other characters collapsed into a dash.
//
//	Slugify("Studio Bela Vista") == "studio-bela-vista"
//	Slugify("Edifício São João") == "edificio-sao-joao"
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		folded = strings.ToLower(name)
	}
	return strings.Trim(nonSlugChars.ReplaceAllString(folded, "-"), "-")
}
