package domain

import "fmt"

// Country represents an operating country of the fleet
type Country string

const (
	CountryIndia Country = "India"
	CountryJapan Country = "Japan"
)

// Countries returns every operating country, in display order
func Countries() []Country {
	return []Country{CountryIndia, CountryJapan}
}

// ParseCountry validates a raw country value against the closed enumeration
func ParseCountry(s string) (Country, error) {
	switch Country(s) {
	case CountryIndia, CountryJapan:
		return Country(s), nil
	}
	return "", fmt.Errorf("unknown country: %q", s)
}

// CountryScoped is implemented by entities that belong to a single country
type CountryScoped interface {
	CountryCode() Country
}

// ForCountry filters a collection down to entities in the given country.
// Exact match only; entities with unknown country values never match.
func ForCountry[T CountryScoped](country Country, items []T) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.CountryCode() == country {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
