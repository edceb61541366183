package area

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Group is one rendered section of a listing page
type Group[T any] struct {
	Area  string `json:"area"`
	Items []T    `json:"items"`
}

// GroupByArea partitions already-sorted items into sections following the
// fixed area order. Items whose area is not in the fixed list land in a
// trailing その他 section.
func GroupByArea[T any](items []T, areaOf func(T) string) []Group[T] {
	byArea := make(map[string][]T)
	var unknown []T
	for _, it := range items {
		a := areaOf(it)
		if !Known(a) {
			unknown = append(unknown, it)
			continue
		}
		byArea[a] = append(byArea[a], it)
	}

	groups := make([]Group[T], 0)
	for _, a := range ordered {
		if a == Other {
			continue // trailing group handles その他 and unknowns together
		}
		if members, ok := byArea[a]; ok {
			groups = append(groups, Group[T]{Area: a, Items: members})
		}
	}
	trailing := append(byArea[Other], unknown...)
	if len(trailing) > 0 {
		groups = append(groups, Group[T]{Area: Other, Items: trailing})
	}
	return groups
}

var jaCollator = collate.New(language.Japanese)

// LocationKey carries the fields location ordering depends on
type LocationKey struct {
	City    string
	Country string
}

// LessLocation orders locations: domestic before foreign; domestic by
// region order then city; foreign by country then city. City comparison
// is locale-aware.
func LessLocation(a, b LocationKey, domesticCountry string) bool {
	da, db := a.Country == domesticCountry, b.Country == domesticCountry
	if da != db {
		return da
	}
	if da {
		ra, _ := RegionOf(a.City)
		rb, _ := RegionOf(b.City)
		if ra != rb {
			return RegionRank(ra) < RegionRank(rb)
		}
		return jaCollator.CompareString(a.City, b.City) < 0
	}
	if a.Country != b.Country {
		return jaCollator.CompareString(a.Country, b.Country) < 0
	}
	return jaCollator.CompareString(a.City, b.City) < 0
}

// SortLocations sorts items in place by LessLocation
func SortLocations[T any](items []T, key func(T) LocationKey, domesticCountry string) {
	sort.SliceStable(items, func(i, j int) bool {
		return LessLocation(key(items[i]), key(items[j]), domesticCountry)
	})
}
