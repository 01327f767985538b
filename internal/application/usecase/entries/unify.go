// Package entries contains entry unification and listing use cases.
package entries

import (
	"log/slog"

	"github.com/spendview/backend/internal/domain/entity"
)

// UnifyInput carries the raw collections and the viewing context.
type UnifyInput struct {
	Entries      entity.AllEntries
	PersonalView bool
	UserID       string
}

// UnifyEntries normalizes the raw expense and income collections into the
// canonical unified shape: expenses first, then income, each in input
// order. Downstream consumers sort when order matters. The function is
// pure: the same input always yields the same output.
//
// Entries whose date cannot be parsed are dropped with a diagnostic; they
// would otherwise sort unpredictably and fail every range comparison.
func UnifyEntries(input UnifyInput) []entity.UnifiedEntry {
	unified := make([]entity.UnifiedEntry, 0, len(input.Entries.Expenses)+len(input.Entries.Income))

	for _, expense := range input.Entries.Expenses {
		date, err := entity.ParseEntryDate(expense.Date)
		if err != nil {
			slog.Warn("Dropping expense with unparsable date",
				"entry_id", expense.ID,
				"date", expense.Date,
			)
			continue
		}

		category := entity.DefaultExpenseCategory
		categoryID := ""
		emoji := ""
		if expense.Category != nil {
			cleaned := CleanCategoryName(expense.Category.Name)
			category = cleaned.Name
			categoryID = expense.Category.ID
			emoji = expense.Category.Emoji
			if emoji == "" {
				emoji = cleaned.Emoji
			}
		}

		resolution := ResolveShare(expense, input.PersonalView, input.UserID)

		unified = append(unified, entity.UnifiedEntry{
			ID:              expense.ID,
			Description:     expense.Description,
			Category:        category,
			CategoryID:      categoryID,
			Emoji:           emoji,
			Date:            date,
			Amount:          resolution.Amount.Abs(),
			IsIncome:        expense.IsIncome,
			IsPersonalShare: resolution.IsPersonalShare,
			OriginalAmount:  resolution.OriginalAmount,
			UserShare:       resolution.UserShare,
		})
	}

	for _, income := range input.Entries.Income {
		date, err := entity.ParseEntryDate(income.Date)
		if err != nil {
			slog.Warn("Dropping income with unparsable date",
				"entry_id", income.ID,
				"date", income.Date,
			)
			continue
		}

		category := entity.DefaultIncomeCategory
		categoryID := ""
		emoji := entity.DefaultIncomeEmoji
		if income.Category != nil {
			cleaned := CleanCategoryName(income.Category.Name)
			category = cleaned.Name
			categoryID = income.Category.ID
			if income.Category.Emoji != "" {
				emoji = income.Category.Emoji
			} else if cleaned.Emoji != "" {
				emoji = cleaned.Emoji
			}
		}

		unified = append(unified, entity.UnifiedEntry{
			ID:          income.ID,
			Description: income.Description,
			Category:    category,
			CategoryID:  categoryID,
			Emoji:       emoji,
			Date:        date,
			Amount:      income.Amount.Abs(),
			// Income is always income, regardless of any flag on the raw record.
			IsIncome: true,
		})
	}

	return unified
}
