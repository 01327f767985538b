package entries

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

func splitExpense() entity.RawExpense {
	return entity.RawExpense{
		ID:          "exp-1",
		Description: "Dinner",
		Date:        "2025-07-10",
		Amount:      decimal.NewFromInt(90),
		Shares: []entity.ExpenseShare{
			{UserID: "101", ShareAmount: decimal.NewFromInt(30)},
			{UserID: "102", ShareAmount: decimal.NewFromInt(60)},
		},
	}
}

func TestResolveShare(t *testing.T) {
	t.Run("personal view with matching share", func(t *testing.T) {
		got := ResolveShare(splitExpense(), true, "101")

		if !got.IsPersonalShare {
			t.Error("expected IsPersonalShare to be true")
		}
		if !got.Amount.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected amount 30, got %s", got.Amount)
		}
		if got.OriginalAmount == nil || !got.OriginalAmount.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected original amount 90, got %v", got.OriginalAmount)
		}
		if got.UserShare == nil || got.UserShare.UserID != "101" {
			t.Errorf("expected user share for 101, got %v", got.UserShare)
		}
	})

	t.Run("numeric coercion matches padded string id", func(t *testing.T) {
		expense := splitExpense()
		expense.Shares[0].UserID = " 101 "

		got := ResolveShare(expense, true, "101")
		if !got.IsPersonalShare {
			t.Error("expected whitespace-padded numeric id to match")
		}
	})

	t.Run("group view keeps full amount", func(t *testing.T) {
		got := ResolveShare(splitExpense(), false, "101")

		if got.IsPersonalShare {
			t.Error("expected full amount outside personal view")
		}
		if !got.Amount.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected amount 90, got %s", got.Amount)
		}
		if got.OriginalAmount != nil {
			t.Errorf("expected no original amount, got %v", got.OriginalAmount)
		}
	})

	t.Run("no matching participant keeps full amount", func(t *testing.T) {
		got := ResolveShare(splitExpense(), true, "999")

		if got.IsPersonalShare {
			t.Error("expected lookup miss to fall back to full amount")
		}
		if !got.Amount.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected amount 90, got %s", got.Amount)
		}
	})

	t.Run("no shares keeps full amount", func(t *testing.T) {
		expense := splitExpense()
		expense.Shares = nil

		got := ResolveShare(expense, true, "101")
		if got.IsPersonalShare {
			t.Error("expected full amount for unsplit expense")
		}
	})

	t.Run("empty user id keeps full amount", func(t *testing.T) {
		got := ResolveShare(splitExpense(), true, "")
		if got.IsPersonalShare {
			t.Error("expected full amount when viewer id is empty")
		}
	})

	t.Run("non-numeric user id never matches", func(t *testing.T) {
		got := ResolveShare(splitExpense(), true, "alice")
		if got.IsPersonalShare {
			t.Error("expected non-numeric id to match nothing")
		}
	})
}
