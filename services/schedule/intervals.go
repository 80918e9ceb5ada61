package schedule

import (
	"sort"

	"slotwise/models"
)

// MergeIntervals collapses a set of intervals into the minimal sorted,
// non-overlapping, non-touching equivalent. Degenerate intervals (start == end)
// are dropped. The input slice is not modified.
func MergeIntervals(intervals []models.Interval) []models.Interval {
	work := make([]models.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			work = append(work, iv)
		}
	}
	if len(work) == 0 {
		return nil
	}

	sort.Slice(work, func(i, j int) bool { return work[i].Start < work[j].Start })

	merged := []models.Interval{work[0]}
	for _, cur := range work[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			// Touching counts as mergeable.
			if cur.End > last.End {
				last.End = cur.End
			}
		} else {
			merged = append(merged, cur)
		}
	}
	return merged
}

// InvertIntervals returns the complement of the given intervals within
// [dayStart, dayEnd]. Input must already be sorted and non-overlapping, so
// callers merge first. Inverting a busy set yields the free slots and vice
// versa; over the same bounds the operation is self-inverse.
func InvertIntervals(intervals []models.Interval, dayStart, dayEnd models.TimeOfDay) []models.Interval {
	var free []models.Interval
	cursor := dayStart
	for _, iv := range intervals {
		if iv.Start > cursor {
			free = append(free, models.Interval{Start: cursor, End: iv.Start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if cursor < dayEnd {
		free = append(free, models.Interval{Start: cursor, End: dayEnd})
	}
	return free
}

// InvertDay is InvertIntervals over the full-day bounds.
func InvertDay(intervals []models.Interval) []models.Interval {
	return InvertIntervals(intervals, models.DayStart, models.DayEnd)
}
