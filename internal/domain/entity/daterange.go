// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// ViewType represents the granularity of the active viewing window.
type ViewType string

const (
	ViewTypeWeek  ViewType = "week"
	ViewTypeMonth ViewType = "month"
)

// IsValid reports whether the view type is one of the known granularities.
func (v ViewType) IsValid() bool {
	return v == ViewTypeWeek || v == ViewTypeMonth
}

// DateRange is an inclusive viewing window. Start is normalized to the
// first instant of its day and End to the last instant of its day, so
// entries exactly on a boundary date are included. Display is a derived,
// locale-formatted label and must never be parsed back for logic.
type DateRange struct {
	Start   time.Time
	End     time.Time
	Display string
}

// Contains reports whether t falls inside the window, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// entryDateLayouts are the accepted shapes for raw platform dates, tried
// in order.
var entryDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEntryDate parses an ISO date string as handed over by the platform
// sync layer. The error is non-nil when no accepted layout matches.
func ParseEntryDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range entryDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
