// Package filter implements the fixed-precedence entry filter pipeline.
//
// Precedence is: search OR (window + bucket selection), then category,
// then type, then amount band, then named date range. The result is always
// sorted by date descending with a stable sort, so equal-date entries keep
// their relative input order across repeated calls.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

// AmountBand names a magnitude range for the search card. The middle
// bands are inclusive at both ends, producing intentional overlap at
// exactly $10, $50 and $100. Observed behavior, kept as-is.
type AmountBand string

const (
	AmountBandUnder10 AmountBand = "under_10"
	AmountBand10To50  AmountBand = "10_to_50"
	AmountBand50To100 AmountBand = "50_to_100"
	AmountBandOver100 AmountBand = "over_100"
)

// IsValid reports whether the band is one of the named ranges.
func (b AmountBand) IsValid() bool {
	switch b {
	case AmountBandUnder10, AmountBand10To50, AmountBand50To100, AmountBandOver100:
		return true
	}
	return false
}

// NamedRange names a relative date range for the search card. These are
// independent of the week/month windowing; the search card uses them
// instead of a window.
type NamedRange string

const (
	NamedRangeToday     NamedRange = "today"
	NamedRangeYesterday NamedRange = "yesterday"
	NamedRangeThisWeek  NamedRange = "this_week"
	NamedRangeThisMonth NamedRange = "this_month"
)

// IsValid reports whether the named range is known.
func (r NamedRange) IsValid() bool {
	switch r {
	case NamedRangeToday, NamedRangeYesterday, NamedRangeThisWeek, NamedRangeThisMonth:
		return true
	}
	return false
}

// Options drives one pass of the pipeline. Zero values mean "no
// constraint on that dimension"; ShowIncome is three-state (nil keeps
// both kinds).
type Options struct {
	// SearchActive switches the pipeline into search mode, bypassing the
	// window and bucket restrictions entirely.
	SearchActive bool
	SearchQuery  string
	// MatchCategory extends token matching to the cleaned category name
	// (search-card variant).
	MatchCategory bool

	// DateRange restricts entries to the active window when search is not
	// active. SelectedBucket further narrows to one bucket label.
	DateRange      *entity.DateRange
	SelectedBucket string
	ViewType       entity.ViewType

	// Category matches the entry's category id where available, else its
	// cleaned display name.
	Category   string
	ShowIncome *bool

	// Search-card variant options.
	AmountBand AmountBand
	NamedRange NamedRange

	// Now anchors the named ranges.
	Now time.Time
}

// Apply runs the pipeline over the unified entries and returns the
// filtered set sorted by date descending.
func Apply(entries []entity.UnifiedEntry, opts Options) []entity.UnifiedEntry {
	var out []entity.UnifiedEntry

	if opts.SearchActive {
		query := strings.TrimSpace(opts.SearchQuery)
		if query == "" {
			// An active-but-empty search shows nothing, not everything.
			return []entity.UnifiedEntry{}
		}
		tokens := strings.Fields(strings.ToLower(query))
		out = make([]entity.UnifiedEntry, 0, len(entries))
		for _, e := range entries {
			if matchesTokens(e, tokens, opts.MatchCategory) {
				out = append(out, e)
			}
		}
	} else {
		scheme := entity.DefaultBucketScheme(opts.ViewType)
		out = make([]entity.UnifiedEntry, 0, len(entries))
		for _, e := range entries {
			if opts.DateRange != nil && !opts.DateRange.Contains(e.Date) {
				continue
			}
			if opts.SelectedBucket != "" && scheme.Label(e.Date) != opts.SelectedBucket {
				continue
			}
			out = append(out, e)
		}
	}

	out = filterCategory(out, opts.Category)
	out = filterType(out, opts.ShowIncome)
	out = filterAmountBand(out, opts.AmountBand)
	out = filterNamedRange(out, opts.NamedRange, opts.Now)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// matchesTokens requires every token to appear in the description
// (AND semantics, substring match per token), or in the category name
// when category matching is enabled.
func matchesTokens(e entity.UnifiedEntry, tokens []string, matchCategory bool) bool {
	description := strings.ToLower(e.Description)
	category := strings.ToLower(e.Category)

	for _, token := range tokens {
		if strings.Contains(description, token) {
			continue
		}
		if matchCategory && strings.Contains(category, token) {
			continue
		}
		return false
	}
	return true
}

func filterCategory(entries []entity.UnifiedEntry, category string) []entity.UnifiedEntry {
	if category == "" {
		return entries
	}

	out := entries[:0]
	for _, e := range entries {
		if e.CategoryID != "" {
			if e.CategoryID == category {
				out = append(out, e)
			}
			continue
		}
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

func filterType(entries []entity.UnifiedEntry, showIncome *bool) []entity.UnifiedEntry {
	if showIncome == nil {
		return entries
	}

	out := entries[:0]
	for _, e := range entries {
		if e.IsIncome == *showIncome {
			out = append(out, e)
		}
	}
	return out
}

var (
	bandTen     = decimal.NewFromInt(10)
	bandFifty   = decimal.NewFromInt(50)
	bandHundred = decimal.NewFromInt(100)
)

func filterAmountBand(entries []entity.UnifiedEntry, band AmountBand) []entity.UnifiedEntry {
	if band == "" {
		return entries
	}

	out := entries[:0]
	for _, e := range entries {
		if amountInBand(e.Amount.Abs(), band) {
			out = append(out, e)
		}
	}
	return out
}

func amountInBand(amount decimal.Decimal, band AmountBand) bool {
	switch band {
	case AmountBandUnder10:
		return amount.LessThan(bandTen)
	case AmountBand10To50:
		return amount.GreaterThanOrEqual(bandTen) && amount.LessThanOrEqual(bandFifty)
	case AmountBand50To100:
		return amount.GreaterThanOrEqual(bandFifty) && amount.LessThanOrEqual(bandHundred)
	case AmountBandOver100:
		return amount.GreaterThan(bandHundred)
	default:
		return false
	}
}

func filterNamedRange(entries []entity.UnifiedEntry, name NamedRange, now time.Time) []entity.UnifiedEntry {
	if name == "" {
		return entries
	}

	out := entries[:0]
	for _, e := range entries {
		if dateInNamedRange(e.Date, name, now) {
			out = append(out, e)
		}
	}
	return out
}

func dateInNamedRange(date time.Time, name NamedRange, now time.Time) bool {
	switch name {
	case NamedRangeToday:
		return sameDay(date, now)
	case NamedRangeYesterday:
		return sameDay(date, now.AddDate(0, 0, -1))
	case NamedRangeThisWeek:
		return !date.Before(startOfDay(now.AddDate(0, 0, -7)))
	case NamedRangeThisMonth:
		return !date.Before(startOfDay(now.AddDate(0, -1, 0)))
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
