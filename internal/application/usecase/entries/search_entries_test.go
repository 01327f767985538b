package entries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/application/usecase/filter"
	domainerror "github.com/spendview/backend/internal/domain/error"
)

func TestSearchEntriesUseCase_Execute(t *testing.T) {
	now := func() time.Time { return listNow }

	t.Run("matches across all history regardless of window", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(listRepo(), now)

		output, err := uc.Execute(context.Background(), SearchEntriesInput{
			GroupID: "group-1",
			Query:   "rent",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Total != 1 || output.Entries[0].ID != "e3" {
			t.Errorf("expected June rent to match, got %v", output.Entries)
		}
	})

	t.Run("matches category names", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(listRepo(), now)

		output, err := uc.Execute(context.Background(), SearchEntriesInput{
			GroupID: "group-1",
			Query:   "income",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Total != 1 || output.Entries[0].ID != "i1" {
			t.Errorf("expected salary to match by category, got %v", output.Entries)
		}
	})

	t.Run("blank query yields nothing", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(listRepo(), now)

		output, err := uc.Execute(context.Background(), SearchEntriesInput{
			GroupID: "group-1",
			Query:   "  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Total != 0 {
			t.Errorf("expected no results, got %d", output.Total)
		}
	})

	t.Run("amount band refines results", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(listRepo(), now)

		output, err := uc.Execute(context.Background(), SearchEntriesInput{
			GroupID:    "group-1",
			Query:      "e",
			AmountBand: filter.AmountBandOver100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, e := range output.Entries {
			if e.Amount.LessThanOrEqual(decimal.NewFromInt(100)) {
				t.Errorf("entry %s: amount %s not over 100", e.ID, e.Amount)
			}
		}
	})

	t.Run("unknown amount band is rejected", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(listRepo(), now)

		_, err := uc.Execute(context.Background(), SearchEntriesInput{
			GroupID:    "group-1",
			Query:      "coffee",
			AmountBand: filter.AmountBand("mid"),
		})

		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeInvalidAmountBand {
			t.Errorf("expected invalid amount band error, got %v", err)
		}
	})

	t.Run("unknown named range is rejected", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(listRepo(), now)

		_, err := uc.Execute(context.Background(), SearchEntriesInput{
			GroupID:    "group-1",
			Query:      "coffee",
			NamedRange: filter.NamedRange("last_year"),
		})

		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeInvalidNamedRange {
			t.Errorf("expected invalid named range error, got %v", err)
		}
	})
}
