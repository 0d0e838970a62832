// Package storage manages the booker's on-disk state.
//
// The storage package owns the data directory (default ~/.banff-booker):
// the JSON attempt journal that records how each search attempt ended, the
// screenshots directory used by the failure paths, and the persistent
// browser profile that keeps the user's session cookies between runs.
package storage
