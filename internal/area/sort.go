package area

import (
	"sort"
	"time"
)

// SortKey carries the three fields every listing sorts on.
// Order: area rank asc, deadline asc (nil last), createdAt desc.
type SortKey struct {
	Area      string
	Deadline  *time.Time
	CreatedAt time.Time
}

// Less reports whether a sorts before b
func Less(a, b SortKey) bool {
	ra, rb := Rank(a.Area), Rank(b.Area)
	if ra != rb {
		return ra < rb
	}
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		// fall through to createdAt
	case a.Deadline == nil:
		return false
	case b.Deadline == nil:
		return true
	case !a.Deadline.Equal(*b.Deadline):
		return a.Deadline.Before(*b.Deadline)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// Sort sorts items in place by their listing key
func Sort[T any](items []T, key func(T) SortKey) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(key(items[i]), key(items[j]))
	})
}

// FilterUpcoming drops items whose reference date is strictly before now.
// Items without a date are always kept; undated rows never expire.
func FilterUpcoming[T any](items []T, dateOf func(T) *time.Time, now time.Time) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if d := dateOf(it); d != nil && d.Before(now) {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
