// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/domain/entity"
	"github.com/spendview/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// ReplaceAll replaces the group's stored snapshot atomically. Positions
// record payload order so FetchAll can return it unchanged.
func (r *entryRepository) ReplaceAll(ctx context.Context, groupID string, entries entity.AllEntries) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expenseIDs []string
		if err := tx.Model(&model.ExpenseModel{}).
			Where("group_id = ?", groupID).
			Pluck("id", &expenseIDs).Error; err != nil {
			return err
		}
		if len(expenseIDs) > 0 {
			if err := tx.Where("expense_id IN ?", expenseIDs).
				Delete(&model.ExpenseShareModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("group_id = ?", groupID).
			Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).
			Delete(&model.IncomeModel{}).Error; err != nil {
			return err
		}

		for i, expense := range entries.Expenses {
			if err := tx.Create(model.ExpenseFromEntity(groupID, expense, i)).Error; err != nil {
				return err
			}
		}
		for i, income := range entries.Income {
			if err := tx.Create(model.IncomeFromEntity(groupID, income, i)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FetchAll retrieves the group's raw entries in stored payload order.
func (r *entryRepository) FetchAll(ctx context.Context, groupID string) (entity.AllEntries, error) {
	var entries entity.AllEntries

	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Shares", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("group_id = ?", groupID).
		Order("position ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return entity.AllEntries{}, result.Error
	}
	for _, em := range expenseModels {
		entries.Expenses = append(entries.Expenses, em.ToEntity())
	}

	var incomeModels []model.IncomeModel
	result = r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("position ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return entity.AllEntries{}, result.Error
	}
	for _, im := range incomeModels {
		entries.Income = append(entries.Income, im.ToEntity())
	}

	return entries, nil
}

// OldestEntryDate returns the earliest parsed date across both tables,
// or nil when the group has no dated entries.
func (r *entryRepository) OldestEntryDate(ctx context.Context, groupID string) (*time.Time, error) {
	// Selecting the typed column directly instead of MIN() keeps the
	// driver's column type information, which the sqlite test driver
	// needs to scan the value back into a time.Time.
	var expenseDates []time.Time
	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("group_id = ? AND date_parsed IS NOT NULL", groupID).
		Order("date_parsed ASC").
		Limit(1).
		Pluck("date_parsed", &expenseDates).Error
	if err != nil {
		return nil, err
	}

	var incomeDates []time.Time
	err = r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("group_id = ? AND date_parsed IS NOT NULL", groupID).
		Order("date_parsed ASC").
		Limit(1).
		Pluck("date_parsed", &incomeDates).Error
	if err != nil {
		return nil, err
	}

	var oldestExpense, oldestIncome *time.Time
	if len(expenseDates) > 0 {
		oldestExpense = &expenseDates[0]
	}
	if len(incomeDates) > 0 {
		oldestIncome = &incomeDates[0]
	}

	switch {
	case oldestExpense == nil:
		return oldestIncome, nil
	case oldestIncome == nil:
		return oldestExpense, nil
	case oldestIncome.Before(*oldestExpense):
		return oldestIncome, nil
	default:
		return oldestExpense, nil
	}
}
