package display

import (
	"sort"
	"time"
)

// NoDateKey is the GroupByDate bucket for items without a timestamp
const NoDateKey = "no-date"

// SortByDate returns a copy of items ordered by the timestamp key extracts,
// earliest first. The sort is stable and items without a timestamp (nil or
// zero) go last.
func SortByDate[T any](items []T, key func(T) *time.Time) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := key(sorted[i]), key(sorted[j])
		switch {
		case missing(a):
			return false
		case missing(b):
			return true
		default:
			return a.Before(*b)
		}
	})
	return sorted
}

// GroupByDate buckets items by their timestamp formatted with layout.
// Items keep their input order within a bucket; items without a timestamp
// (nil or zero) land under NoDateKey.
func GroupByDate[T any](items []T, key func(T) *time.Time, layout string) map[string][]T {
	if layout == "" {
		layout = LayoutEditDate
	}

	groups := make(map[string][]T)
	for _, item := range items {
		groupKey := NoDateKey
		if ts := key(item); !missing(ts) {
			groupKey = ts.Format(layout)
		}
		groups[groupKey] = append(groups[groupKey], item)
	}
	return groups
}

func missing(ts *time.Time) bool {
	return ts == nil || ts.IsZero()
}
