// Package selection implements the policy for picking which discovered
// section or site to act on.
//
// Both choosers are pure functions over the lists the scraper produced and
// the user's ordered preference lists:
//   - preference entries are tried in list order (earlier entries win)
//   - name matching is case-insensitive substring
//   - with no preference match the first discovered unit is used, so the
//     tool always acts on something when anything is available
//
// An empty candidate list is the only "no selection" case and is reported
// through the ok result, never as an error; callers treat it as "try the
// next date or campground".
package selection

import (
	"strings"

	"github.com/shengkai/banff-booker/internal/unit"
)

// ChooseSection picks the section to expand. Priority:
//  1. the first preferredSections entry that is a case-insensitive substring
//     of some section name (first matching section in page order)
//  2. the section whose letter code matches one derived from a
//     preferredSites entry ("A21" wants section "A")
//  3. the first section in page order
//
// ok is false only when sections is empty.
func ChooseSection(sections []unit.Unit, preferredSections, preferredSites []string) (chosen unit.Unit, ok bool) {
	if len(sections) == 0 {
		return unit.Unit{}, false
	}

	for _, pref := range preferredSections {
		want := strings.ToLower(pref)
		for _, sec := range sections {
			if strings.Contains(strings.ToLower(sec.Name), want) {
				return sec, true
			}
		}
	}

	for _, pref := range preferredSites {
		code := unit.SectionCode(pref)
		if code == "" {
			continue
		}
		for _, sec := range sections {
			if unit.SectionCode(sec.Name) == code {
				return sec, true
			}
		}
	}

	return sections[0], true
}

// ChooseSite picks the site to reserve: the first preferredSites entry that
// is a case-insensitive substring of some site name, else the first site in
// page order. ok is false only when sites is empty.
func ChooseSite(sites []unit.Unit, preferredSites []string) (chosen unit.Unit, ok bool) {
	if len(sites) == 0 {
		return unit.Unit{}, false
	}

	for _, pref := range preferredSites {
		want := strings.ToUpper(strings.TrimSpace(pref))
		for _, site := range sites {
			if strings.Contains(strings.ToUpper(site.Name), want) {
				return site, true
			}
		}
	}

	return sites[0], true
}
