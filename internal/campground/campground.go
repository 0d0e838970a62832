// Package campground provides lookup of Banff-area campgrounds on the
// Parks Canada reservation system.
package campground

import (
	"strings"
)

// Info describes a reservable frontcountry campground
type Info struct {
	Name    string // Full campground name
	URLSlug string // Path segment on reservation.pc.gc.ca
	Area    string // Area within the park (e.g., "Banff townsite")
}

// Lookup attempts to find campground information by name
// Returns nil if the name is not in the built-in directory
func Lookup(name string) *Info {
	normalized := normalizeName(name)
	if normalized == "" {
		return nil
	}

	// Direct lookup by normalized name
	if info, exists := directory[normalized]; exists {
		return info
	}

	// Fallback: try partial matching (substring search)
	for key, info := range directory {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return info
		}
	}

	return nil
}

// All returns every campground in the built-in directory
func All() []*Info {
	infos := make([]*Info, 0, len(directory))
	for _, info := range directory {
		infos = append(infos, info)
	}
	return infos
}

// normalizeName converts a campground name to a normalized form for matching
func normalizeName(name string) string {
	normalized := strings.ToLower(name)
	normalized = strings.TrimSpace(normalized)
	normalized = strings.TrimSuffix(normalized, " campground")
	normalized = strings.TrimSuffix(normalized, " camping")
	return normalized
}
