package entries

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

// Tuesday, July 15 2025.
var listNow = time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

type fakeEntryRepo struct {
	entries  entity.AllEntries
	earliest *time.Time
}

func (f *fakeEntryRepo) ReplaceAll(ctx context.Context, groupID string, entries entity.AllEntries) error {
	f.entries = entries
	return nil
}

func (f *fakeEntryRepo) FetchAll(ctx context.Context, groupID string) (entity.AllEntries, error) {
	return f.entries, nil
}

func (f *fakeEntryRepo) OldestEntryDate(ctx context.Context, groupID string) (*time.Time, error) {
	return f.earliest, nil
}

func listRepo() *fakeEntryRepo {
	earliest := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &fakeEntryRepo{
		earliest: &earliest,
		entries: entity.AllEntries{
			Expenses: []entity.RawExpense{
				{ID: "e1", Description: "Coffee", Date: "2025-07-14", Amount: decimal.NewFromInt(5)},
				{ID: "e2", Description: "Groceries", Date: "2025-07-16", Amount: decimal.NewFromInt(60)},
				{ID: "e3", Description: "June rent", Date: "2025-06-02", Amount: decimal.NewFromInt(1200)},
			},
			Income: []entity.RawIncome{
				{ID: "i1", Description: "Salary", Date: "2025-07-15", Amount: decimal.NewFromInt(3000)},
			},
		},
	}
}

func TestListEntriesUseCase_Execute(t *testing.T) {
	now := func() time.Time { return listNow }

	t.Run("lists the current week sorted date descending", func(t *testing.T) {
		uc := NewListEntriesUseCase(listRepo(), now)

		output, err := uc.Execute(context.Background(), ListEntriesInput{
			GroupID:  "group-1",
			ViewType: entity.ViewTypeWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"e2", "i1", "e1"}
		if len(output.Entries) != len(want) {
			t.Fatalf("expected %d entries, got %d", len(want), len(output.Entries))
		}
		for i, id := range want {
			if output.Entries[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, output.Entries[i].ID)
			}
		}
		if !output.CanGoBack {
			t.Error("expected canGoBack with entries back to June")
		}
	})

	t.Run("type filter narrows to income", func(t *testing.T) {
		uc := NewListEntriesUseCase(listRepo(), now)

		showIncome := true
		output, err := uc.Execute(context.Background(), ListEntriesInput{
			GroupID:    "group-1",
			ViewType:   entity.ViewTypeWeek,
			ShowIncome: &showIncome,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Entries) != 1 || output.Entries[0].ID != "i1" {
			t.Errorf("expected only i1, got %v", output.Entries)
		}
	})

	t.Run("month offset reaches June entries", func(t *testing.T) {
		uc := NewListEntriesUseCase(listRepo(), now)

		output, err := uc.Execute(context.Background(), ListEntriesInput{
			GroupID:  "group-1",
			ViewType: entity.ViewTypeMonth,
			Offset:   -1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Entries) != 1 || output.Entries[0].ID != "e3" {
			t.Errorf("expected only e3 in June, got %v", output.Entries)
		}
		if output.CanGoBack {
			t.Error("expected canGoBack false on the earliest month")
		}
	})

	t.Run("invalid view type is rejected", func(t *testing.T) {
		uc := NewListEntriesUseCase(listRepo(), now)

		_, err := uc.Execute(context.Background(), ListEntriesInput{
			GroupID:  "group-1",
			ViewType: entity.ViewType("fortnight"),
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
