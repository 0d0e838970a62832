package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shengkai/banff-booker/internal/unit"
)

// buttonLabel returns the label the reservation app exposes for a button,
// preferring aria-label over visible text.
func buttonLabel(sel *goquery.Selection) string {
	if label, ok := sel.Attr("aria-label"); ok && strings.TrimSpace(label) != "" {
		return strings.TrimSpace(label)
	}
	return strings.TrimSpace(sel.Text())
}

// clickSelector builds a CSS selector that re-locates a labelled button in
// the live page. Labels come from the page itself so quotes are escaped
// rather than trusted.
func clickSelector(label string) string {
	return fmt.Sprintf(`button[aria-label="%s"]`, strings.ReplaceAll(label, `"`, `\"`))
}

// ParseSections extracts available section/loop buttons from rendered search
// results HTML. Both naming conventions used by the reservation site are
// recognized:
//
//	"Site A  Available"       (lettered loop)
//	"Loops 22-27  Available"  (numbered loop)
//
// Malformed elements are skipped, never reported as errors.
func ParseSections(r io.Reader) ([]unit.Unit, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var sections []unit.Unit
	doc.Find("button").Each(func(i int, sel *goquery.Selection) {
		label := buttonLabel(sel)
		if !strings.Contains(label, "Available") || strings.Contains(label, "Not Available") {
			return
		}
		if !unit.IsSectionLabel(label) {
			return
		}
		sections = append(sections, unit.Unit{
			Name:     unit.ExtractName(label),
			Kind:     unit.KindSection,
			Selector: clickSelector(label),
		})
	})
	return sections, nil
}

// ParseSites extracts individually bookable available sites from rendered
// HTML. The primary pattern is the Angular accordion used on most
// campground pages:
//
//	<mat-expansion-panel data-resource="A50">
//	  <mat-expansion-panel-header>
//	    <span class="availability-label">Available</span>
//	    ...
//
// where the site name is the data-resource attribute and the click target is
// the panel header. When no panels are present, the older all-in-one button
// pattern ("Site A49  Available") is tried. Duplicate names are dropped,
// page order is kept.
func ParseSites(r io.Reader) ([]unit.Unit, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var sites []unit.Unit
	seen := make(map[string]bool)

	doc.Find("mat-expansion-panel").Each(func(i int, panel *goquery.Selection) {
		available := false
		panel.Find(".availability-label").EachWithBreak(func(_ int, lbl *goquery.Selection) bool {
			if strings.TrimSpace(lbl.Text()) == "Available" {
				available = true
				return false
			}
			return true
		})
		if !available {
			return
		}

		name, _ := panel.Attr("data-resource")
		if name == "" {
			name = strings.TrimSpace(panel.Find("h3.resource-name").First().Text())
			name = strings.TrimSpace(strings.TrimPrefix(name, "Site"))
		}
		if name == "" || seen[name] {
			return
		}
		if panel.Find("mat-expansion-panel-header").Length() == 0 {
			return
		}
		seen[name] = true
		sites = append(sites, unit.Unit{
			Name: name,
			Kind: unit.KindSite,
			Selector: fmt.Sprintf(`mat-expansion-panel[data-resource="%s"] mat-expansion-panel-header`,
				strings.ReplaceAll(name, `"`, `\"`)),
		})
	})

	if len(sites) > 0 {
		return sites, nil
	}

	// Older pages render each site as a single labelled button.
	doc.Find("button").Each(func(i int, sel *goquery.Selection) {
		label := buttonLabel(sel)
		if !strings.Contains(label, "Available") || strings.Contains(label, "Not Available") {
			return
		}
		if !strings.HasPrefix(label, "Site ") || unit.IsSectionLabel(label) {
			return
		}
		name := unit.ExtractName(label)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		sites = append(sites, unit.Unit{
			Name:     name,
			Kind:     unit.KindSite,
			Selector: clickSelector(label),
		})
	})
	return sites, nil
}

// AtSiteLevel reports whether the page is already showing individual sites.
// The Details affordance is the reliable marker: it only appears once a
// section has been expanded.
func AtSiteLevel(r io.Reader) bool {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return false
	}
	return doc.Find(".btn-view-details").Length() > 0
}
