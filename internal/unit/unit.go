package unit

import (
	"strings"
	"unicode"
)

// Kind distinguishes a section (a loop or lettered area that expands into
// individual sites) from an individually bookable site.
type Kind string

const (
	KindSection Kind = "section"
	KindSite    Kind = "site"
)

// Unit is a bookable element discovered on the search results page. Units are
// rebuilt fresh on every search and never persisted. Selector is the click
// handle for the element the name was read from; the selection policy treats
// it as opaque.
type Unit struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Selector string `json:"-"`
}

// Section label prefixes as they appear on the reservation site.
var sectionPrefixes = []string{"site ", "loops", "loop "}

// IsSectionLabel reports whether a button label names a section rather than
// an individual site.
//
// Section buttons:    "Site A  Available", "Loops 22-27  Available"
// Individual sites:   "Site A49  Available" (identifier contains a digit)
func IsSectionLabel(label string) bool {
	lower := strings.ToLower(label)
	matched := false
	for _, p := range sectionPrefixes {
		if strings.HasPrefix(lower, p) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if strings.HasPrefix(lower, "site ") {
		fields := strings.Fields(label[5:])
		if len(fields) > 0 && strings.ContainsFunc(fields[0], unicode.IsDigit) {
			return false
		}
	}
	return true
}

// ExtractName turns a raw button label into the canonical identifier used by
// the selection policy.
//
// "Site A  Available"           → "A"
// "Site Loops 22-27  Available" → "Loops 22-27"
func ExtractName(label string) string {
	name := strings.TrimSpace(label)
	name = strings.TrimPrefix(name, "Site ")
	for _, suffix := range []string{"Not Available", "Unavailable", "Available"} {
		name = strings.ReplaceAll(name, suffix, "")
	}
	return strings.TrimSpace(name)
}

// SectionCode derives a section identifier from a site identifier by keeping
// only letters and upper-casing: "A21" → "A", "Loops 22-27" → "LOOPS".
// Returns "" when the input has no letters.
func SectionCode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
