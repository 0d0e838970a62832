// Package flow drives the reservation site through the booking steps:
// manual login, the virtual waiting room, campground search, section and
// site selection, and reservation confirmation up to the payment page.
//
// The flow deliberately stops before payment; the human reviews and pays in
// the same browser window. Everything here is best-effort against markup the
// site changes frequently, so failures screenshot and move on to the next
// date variant or campground rather than aborting the run.
package flow
