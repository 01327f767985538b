package entries

import (
	"context"
	"fmt"
	"time"

	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/application/usecase/filter"
	domainerror "github.com/spendview/backend/internal/domain/error"
)

// SearchEntriesInput represents the input for searching across all of a
// group's entries. Search ignores the week/month window entirely.
type SearchEntriesInput struct {
	GroupID      string
	UserID       string
	PersonalView bool
	Query        string
	Category     string
	ShowIncome   *bool
	AmountBand   filter.AmountBand
	NamedRange   filter.NamedRange
}

// SearchEntriesOutput represents the search results.
type SearchEntriesOutput struct {
	Entries []EntryItem `json:"entries"`
	Total   int         `json:"total"`
}

// SearchEntriesUseCase handles full-history entry search with the
// search-card refinements (amount band and named date range).
type SearchEntriesUseCase struct {
	entryRepo adapter.EntryRepository
	now       func() time.Time
}

// NewSearchEntriesUseCase creates a new SearchEntriesUseCase instance.
func NewSearchEntriesUseCase(entryRepo adapter.EntryRepository, now func() time.Time) *SearchEntriesUseCase {
	return &SearchEntriesUseCase{
		entryRepo: entryRepo,
		now:       now,
	}
}

// Execute searches the group's unified entries. Tokens match against the
// description and the cleaned category name; a blank query yields no
// results.
func (uc *SearchEntriesUseCase) Execute(
	ctx context.Context,
	input SearchEntriesInput,
) (*SearchEntriesOutput, error) {
	if err := validateSearchInput(input); err != nil {
		return nil, err
	}

	raw, err := uc.entryRepo.FetchAll(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	unified := UnifyEntries(UnifyInput{
		Entries:      raw,
		PersonalView: input.PersonalView,
		UserID:       input.UserID,
	})

	filtered := filter.Apply(unified, filter.Options{
		SearchActive:  true,
		SearchQuery:   input.Query,
		MatchCategory: true,
		Category:      input.Category,
		ShowIncome:    input.ShowIncome,
		AmountBand:    input.AmountBand,
		NamedRange:    input.NamedRange,
		Now:           uc.now(),
	})

	return &SearchEntriesOutput{
		Entries: toEntryItems(filtered),
		Total:   len(filtered),
	}, nil
}

func validateSearchInput(input SearchEntriesInput) error {
	if input.AmountBand != "" && !input.AmountBand.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmountBand,
			"amount_band must be: under_10, 10_to_50, 50_to_100, or over_100",
			domainerror.ErrInvalidAmountBand,
		)
	}

	if input.NamedRange != "" && !input.NamedRange.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidNamedRange,
			"date_range must be: today, yesterday, this_week, or this_month",
			domainerror.ErrInvalidNamedRange,
		)
	}

	return nil
}
