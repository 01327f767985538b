// Package window computes the active week/month viewing windows.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/domain/entity"
	domainerror "github.com/spendview/backend/internal/domain/error"
)

// GetRangeInput represents the input for computing the active window.
type GetRangeInput struct {
	GroupID  string
	ViewType entity.ViewType
	Offset   int
}

// GetRangeOutput represents the computed window.
type GetRangeOutput struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Display   string    `json:"display"`
	CanGoBack bool      `json:"can_go_back"`
}

// GetRangeUseCase handles computing the active viewing window for a group.
type GetRangeUseCase struct {
	entryRepo adapter.EntryRepository
	now       func() time.Time
}

// NewGetRangeUseCase creates a new GetRangeUseCase instance.
func NewGetRangeUseCase(entryRepo adapter.EntryRepository, now func() time.Time) *GetRangeUseCase {
	return &GetRangeUseCase{
		entryRepo: entryRepo,
		now:       now,
	}
}

// Execute computes the clamped window for the given view type and offset.
func (uc *GetRangeUseCase) Execute(
	ctx context.Context,
	input GetRangeInput,
) (*GetRangeOutput, error) {
	if err := ValidateView(input.ViewType, input.Offset); err != nil {
		return nil, err
	}

	earliest, err := uc.entryRepo.OldestEntryDate(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get oldest entry date: %w", err)
	}

	dateRange, canGoBack := CalculateRange(input.ViewType, input.Offset, earliest, uc.now())

	return &GetRangeOutput{
		Start:     dateRange.Start,
		End:       dateRange.End,
		Display:   dateRange.Display,
		CanGoBack: canGoBack,
	}, nil
}

// ValidateView rejects unknown granularities and future offsets. The UI
// restricts forward navigation to offset zero; the API enforces the same
// rule.
func ValidateView(viewType entity.ViewType, offset int) error {
	if !viewType.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidViewType,
			"view must be: week or month",
			domainerror.ErrInvalidViewType,
		)
	}

	if offset > 0 {
		return domainerror.NewRangeError(
			domainerror.ErrCodeForwardOffset,
			"offset must be zero or negative",
			domainerror.ErrForwardOffset,
		)
	}

	return nil
}
