// Package chart buckets unified entries into chart-ready series.
package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/application/usecase/entries"
	"github.com/spendview/backend/internal/application/usecase/window"
	"github.com/spendview/backend/internal/domain/entity"
)

// GetChartInput represents the input for building a chart series.
type GetChartInput struct {
	GroupID      string
	UserID       string
	PersonalView bool
	ViewType     entity.ViewType
	Offset       int
	Scheme       entity.BucketScheme
	Category     string
	ShowIncome   *bool
}

// GetChartOutput represents the chart series with its window.
type GetChartOutput struct {
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end"`
	Display string           `json:"display"`
	Points  []ChartDataPoint `json:"points"`
}

// GetChartUseCase handles building the chart series for a group view,
// memoized through an optional cache. Recomputing from scratch always
// yields the same result; the cache only skips work.
type GetChartUseCase struct {
	entryRepo adapter.EntryRepository
	cache     adapter.ChartCache
	now       func() time.Time
}

// NewGetChartUseCase creates a new GetChartUseCase instance. cache may be
// nil to disable memoization.
func NewGetChartUseCase(
	entryRepo adapter.EntryRepository,
	cache adapter.ChartCache,
	now func() time.Time,
) *GetChartUseCase {
	return &GetChartUseCase{
		entryRepo: entryRepo,
		cache:     cache,
		now:       now,
	}
}

// Execute builds the chart series for the given view.
func (uc *GetChartUseCase) Execute(
	ctx context.Context,
	input GetChartInput,
) (*GetChartOutput, error) {
	if err := validateChartInput(input); err != nil {
		return nil, err
	}

	raw, err := uc.entryRepo.FetchAll(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	earliest, err := uc.entryRepo.OldestEntryDate(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get oldest entry date: %w", err)
	}

	now := uc.now()
	unified := entries.UnifyEntries(entries.UnifyInput{
		Entries:      raw,
		PersonalView: input.PersonalView,
		UserID:       input.UserID,
	})
	dateRange, _ := window.CalculateRange(input.ViewType, input.Offset, earliest, now)

	output := &GetChartOutput{
		Start:   dateRange.Start,
		End:     dateRange.End,
		Display: dateRange.Display,
	}

	key := uc.cacheKey(input, dateRange, unified, now)
	if points, ok := uc.cachedPoints(ctx, key); ok {
		output.Points = points
		return output, nil
	}

	output.Points = Aggregate(AggregateInput{
		Entries:    unified,
		DateRange:  dateRange,
		ViewType:   input.ViewType,
		Scheme:     input.Scheme,
		Category:   input.Category,
		ShowIncome: input.ShowIncome,
		Now:        now,
	})

	uc.storePoints(ctx, key, output.Points)

	return output, nil
}

// cacheKey builds a structural hash of everything the aggregation depends
// on, including a fingerprint of the unified entries, so stale data can
// never be served after a sync.
func (uc *GetChartUseCase) cacheKey(
	input GetChartInput,
	dateRange entity.DateRange,
	unified []entity.UnifiedEntry,
	now time.Time,
) string {
	h := fnv.New64a()

	fmt.Fprintf(h, "%s|%d|%s|%s|%t|%s|", input.ViewType, input.Offset, input.Scheme, input.Category, input.PersonalView, input.UserID)
	if input.ShowIncome != nil {
		fmt.Fprintf(h, "%t|", *input.ShowIncome)
	}
	fmt.Fprintf(h, "%d|%d|%s|", dateRange.Start.Unix(), dateRange.End.Unix(), now.Format("2006-01-02T15"))

	for i := range unified {
		e := &unified[i]
		fmt.Fprintf(h, "%s|%d|%s|%t|", e.ID, e.Date.Unix(), e.Amount.String(), e.IsIncome)
	}

	return fmt.Sprintf("chart:%s:%x", input.GroupID, h.Sum64())
}

func (uc *GetChartUseCase) cachedPoints(ctx context.Context, key string) ([]ChartDataPoint, bool) {
	if uc.cache == nil {
		return nil, false
	}

	payload, err := uc.cache.Get(ctx, key)
	if err != nil {
		if err != adapter.ErrCacheMiss {
			slog.Warn("Chart cache read failed, recomputing", "error", err)
		}
		return nil, false
	}

	var points []ChartDataPoint
	if err := json.Unmarshal(payload, &points); err != nil {
		slog.Warn("Chart cache payload corrupt, recomputing", "error", err)
		return nil, false
	}
	return points, true
}

func (uc *GetChartUseCase) storePoints(ctx context.Context, key string, points []ChartDataPoint) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(points)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, payload); err != nil {
		slog.Warn("Chart cache write failed", "error", err)
	}
}

// validateChartInput rejects unknown granularities and future offsets.
func validateChartInput(input GetChartInput) error {
	return window.ValidateView(input.ViewType, input.Offset)
}
