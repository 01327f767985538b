// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"
)

// BucketFill marks a chart bucket semantically; consumers decide the
// actual color.
type BucketFill string

const (
	FillNormal    BucketFill = "normal"
	FillHighlight BucketFill = "highlight"
)

// BucketScheme selects how entries are slotted into chart buckets.
type BucketScheme string

const (
	BucketWeekday     BucketScheme = "weekday"
	BucketDayOfMonth  BucketScheme = "day_of_month"
	BucketHourOfDay   BucketScheme = "hour_of_day"
	BucketWeekOfMonth BucketScheme = "week_of_month"
)

// IsValid reports whether the scheme is one of the known bucketings.
func (s BucketScheme) IsValid() bool {
	switch s {
	case BucketWeekday, BucketDayOfMonth, BucketHourOfDay, BucketWeekOfMonth:
		return true
	}
	return false
}

// DefaultBucketScheme returns the bucketing used by a view type: weekday
// short-names for the week view, day-of-month labels for the month view.
func DefaultBucketScheme(v ViewType) BucketScheme {
	if v == ViewTypeWeek {
		return BucketWeekday
	}
	return BucketDayOfMonth
}

// Label computes the bucket label for a point in time. The label space is
// coarser than a full date; bucket selection compares these strings, not
// dates.
func (s BucketScheme) Label(t time.Time) string {
	switch s {
	case BucketWeekday:
		return t.Format("Mon")
	case BucketDayOfMonth:
		return fmt.Sprintf("%d %s", t.Day(), t.Format("Jan"))
	case BucketHourOfDay:
		return fmt.Sprintf("%dh", t.Hour())
	case BucketWeekOfMonth:
		return fmt.Sprintf("Week %d", (t.Day()-1)/7+1)
	default:
		return t.Format("2006-01-02")
	}
}
