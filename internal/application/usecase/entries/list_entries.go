package entries

import (
	"context"
	"fmt"
	"time"

	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/application/usecase/filter"
	"github.com/spendview/backend/internal/application/usecase/window"
	"github.com/spendview/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing the active window.
type ListEntriesInput struct {
	GroupID        string
	UserID         string
	PersonalView   bool
	ViewType       entity.ViewType
	Offset         int
	SelectedBucket string
	Category       string
	ShowIncome     *bool
}

// ListEntriesOutput represents the windowed entry list.
type ListEntriesOutput struct {
	Start     time.Time   `json:"start"`
	End       time.Time   `json:"end"`
	Display   string      `json:"display"`
	CanGoBack bool        `json:"can_go_back"`
	Entries   []EntryItem `json:"entries"`
}

// ListEntriesUseCase handles listing a group's entries for the active
// week or month window.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
	now       func() time.Time
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository, now func() time.Time) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		now:       now,
	}
}

// Execute unifies the group's entries and filters them down to the
// requested window, sorted by date descending.
func (uc *ListEntriesUseCase) Execute(
	ctx context.Context,
	input ListEntriesInput,
) (*ListEntriesOutput, error) {
	if err := window.ValidateView(input.ViewType, input.Offset); err != nil {
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
	unified := UnifyEntries(UnifyInput{
		Entries:      raw,
		PersonalView: input.PersonalView,
		UserID:       input.UserID,
	})
	dateRange, canGoBack := window.CalculateRange(input.ViewType, input.Offset, earliest, now)

	filtered := filter.Apply(unified, filter.Options{
		DateRange:      &dateRange,
		SelectedBucket: input.SelectedBucket,
		ViewType:       input.ViewType,
		Category:       input.Category,
		ShowIncome:     input.ShowIncome,
		Now:            now,
	})

	return &ListEntriesOutput{
		Start:     dateRange.Start,
		End:       dateRange.End,
		Display:   dateRange.Display,
		CanGoBack: canGoBack,
		Entries:   toEntryItems(filtered),
	}, nil
}
