// Package scraper parses rendered reservation pages into bookable units.
//
// The scraper package works on HTML snapshots taken from the live browser
// session and extracts the currently available sections and individual sites.
// It recognizes both markup generations used by the reservation app: the
// Angular expansion-panel accordion and the older all-in-one labelled
// buttons. Parsing is best-effort throughout; rows that do not match either
// shape are skipped rather than reported as errors.
package scraper
