// Package window computes the active week/month viewing windows.
package window

import (
	"fmt"
	"time"

	"github.com/spendview/backend/internal/domain/entity"
)

// CalculateRange computes the inclusive viewing window for a view type and
// offset (0 = current window, negative = past windows), clamped so the
// window never starts before the week/month of the oldest known entry.
// The second return value reports whether one more backward step would
// still land on or after the earliest-allowed start.
//
// earliest may be nil (no entries yet); without it there is nothing to
// clamp against and backward navigation stays open.
func CalculateRange(viewType entity.ViewType, offset int, earliest *time.Time, now time.Time) (entity.DateRange, bool) {
	start := unclampedStart(viewType, offset, now)

	canGoBack := true
	if earliest != nil {
		floor := earliestAllowedStart(viewType, *earliest)
		if start.Before(floor) {
			start = floor
		}
		canGoBack = !unclampedStart(viewType, offset-1, now).Before(floor)
	}

	end := rangeEnd(viewType, start)

	return entity.DateRange{
		Start:   start,
		End:     end,
		Display: displayLabel(start, end),
	}, canGoBack
}

// unclampedStart computes the window start before any earliest-date clamp:
// the Monday of the week "offset" weeks away, or day 1 of the month
// "offset" months away.
func unclampedStart(viewType entity.ViewType, offset int, now time.Time) time.Time {
	if viewType == entity.ViewTypeWeek {
		return weekStart(now.AddDate(0, 0, offset*7))
	}
	return time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
}

// earliestAllowedStart is the start of the window containing the oldest
// known entry.
func earliestAllowedStart(viewType entity.ViewType, earliest time.Time) time.Time {
	if viewType == entity.ViewTypeWeek {
		return weekStart(earliest)
	}
	return time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, earliest.Location())
}

// rangeEnd recomputes the window end from its (possibly clamped) start
// using the duration rule: six days later for a week, the last day of the
// month for a month. Constructing day 0 of the next month yields that
// last day.
func rangeEnd(viewType entity.ViewType, start time.Time) time.Time {
	var lastDay time.Time
	if viewType == entity.ViewTypeWeek {
		lastDay = start.AddDate(0, 0, 6)
	} else {
		lastDay = start.AddDate(0, 1, -1)
	}
	return endOfDay(lastDay)
}

// weekStart returns the start of day on the Monday on-or-before t.
func weekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(t.Year(), t.Month(), t.Day()-daysFromMonday, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// displayLabel renders the cosmetic range label, e.g. "Jul 14 - Jul 20, 2025".
func displayLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s, %d", start.Format("Jan 2"), end.Format("Jan 2"), end.Year())
}
