// Package chart buckets unified entries into chart-ready series.
package chart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/application/usecase/filter"
	"github.com/spendview/backend/internal/domain/entity"
)

// ChartDataPoint is one bucket of the chart series. LineValue carries the
// same value on every point: the arithmetic mean of all bucket totals, a
// flat reference line.
type ChartDataPoint struct {
	Name      string            `json:"name"`
	Amount    decimal.Decimal   `json:"amount"`
	LineValue decimal.Decimal   `json:"line_value"`
	Fill      entity.BucketFill `json:"fill"`
}

// AggregateInput carries the entry set and the bucketing context.
type AggregateInput struct {
	Entries   []entity.UnifiedEntry
	DateRange entity.DateRange
	ViewType  entity.ViewType
	// Scheme overrides the view's default bucketing when set (hour-of-day
	// and week-of-month are only reachable this way).
	Scheme     entity.BucketScheme
	Category   string
	ShowIncome *bool
	Now        time.Time
}

// Aggregate buckets the entries into one labeled slot per calendar unit of
// the range. Buckets are pre-seeded with zero for every day in the range,
// so the series is continuous and gap-free; totals accumulate absolute
// magnitudes only. The bucket containing "today" is highlighted when
// today falls inside the range.
func Aggregate(input AggregateInput) []ChartDataPoint {
	scheme := input.Scheme
	if scheme == "" {
		scheme = entity.DefaultBucketScheme(input.ViewType)
	}

	// Chart filter options are independent of any list-level filter state.
	entries := filter.Apply(input.Entries, filter.Options{
		DateRange:  &input.DateRange,
		ViewType:   input.ViewType,
		Category:   input.Category,
		ShowIncome: input.ShowIncome,
	})

	labels := seedLabels(scheme, input.DateRange)
	totals := make(map[string]decimal.Decimal, len(labels))
	for _, label := range labels {
		totals[label] = decimal.Zero
	}

	for _, e := range entries {
		label := scheme.Label(e.Date)
		if _, ok := totals[label]; !ok {
			continue
		}
		totals[label] = totals[label].Add(e.Amount.Abs())
	}

	mean := decimal.Zero
	if len(labels) > 0 {
		sum := decimal.Zero
		for _, label := range labels {
			sum = sum.Add(totals[label])
		}
		mean = sum.Div(decimal.NewFromInt(int64(len(labels))))
	}

	highlight := ""
	if input.DateRange.Contains(input.Now) {
		highlight = scheme.Label(input.Now)
	}

	points := make([]ChartDataPoint, 0, len(labels))
	for _, label := range labels {
		fill := entity.FillNormal
		if highlight != "" && label == highlight {
			fill = entity.FillHighlight
		}
		points = append(points, ChartDataPoint{
			Name:      label,
			Amount:    totals[label],
			LineValue: mean,
			Fill:      fill,
		})
	}

	return points
}

// seedLabels produces the ordered bucket label set for the range: exactly
// the days in the range for calendar schemes, the 24 hours for the
// hour-of-day scheme.
func seedLabels(scheme entity.BucketScheme, dateRange entity.DateRange) []string {
	if scheme == entity.BucketHourOfDay {
		labels := make([]string, 0, 24)
		base := dateRange.Start
		for hour := 0; hour < 24; hour++ {
			labels = append(labels, scheme.Label(base.Add(time.Duration(hour)*time.Hour)))
		}
		return labels
	}

	var labels []string
	seen := make(map[string]bool)
	for day := dateRange.Start; !day.After(dateRange.End); day = day.AddDate(0, 0, 1) {
		label := scheme.Label(day)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
