// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table. Date stores the raw ISO
// string exactly as the platform sent it; DateParsed is the parsed copy
// used for range queries and is nil when the raw value is unparsable.
// Position preserves payload order across a round trip.
type ExpenseModel struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	GroupID            string           `gorm:"type:varchar(64);not null;index"`
	ExternalID         string           `gorm:"type:varchar(64);not null"`
	Description        string           `gorm:"type:varchar(255);not null"`
	Date               string           `gorm:"type:varchar(64);not null"`
	DateParsed         *time.Time       `gorm:"type:timestamp;index"`
	Amount             decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	IsIncome           bool             `gorm:"default:false"`
	CategoryExternalID *string          `gorm:"type:varchar(64)"`
	CategoryName       *string          `gorm:"type:varchar(255)"`
	CategoryEmoji      *string          `gorm:"type:varchar(16)"`
	Position           int              `gorm:"not null"`
	CreatedAt          time.Time        `gorm:"not null"`

	Shares []ExpenseShareModel `gorm:"foreignKey:ExpenseID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ExpenseShareModel represents one participant's share of an expense.
// UserID stays a string; the platform sends numbers and numeric strings
// interchangeably and normalization happens at read time.
type ExpenseShareModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID      string          `gorm:"type:varchar(64);not null"`
	ShareAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position    int             `gorm:"not null"`
}

// TableName returns the table name for the ExpenseShareModel.
func (ExpenseShareModel) TableName() string {
	return "expense_shares"
}

// IncomeModel represents the income table. Same raw-date convention as
// ExpenseModel; income has no shares and no type flag.
type IncomeModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupID            string          `gorm:"type:varchar(64);not null;index"`
	ExternalID         string          `gorm:"type:varchar(64);not null"`
	Description        string          `gorm:"type:varchar(255);not null"`
	Date               string          `gorm:"type:varchar(64);not null"`
	DateParsed         *time.Time      `gorm:"type:timestamp;index"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryExternalID *string         `gorm:"type:varchar(64)"`
	CategoryName       *string         `gorm:"type:varchar(255)"`
	CategoryEmoji      *string         `gorm:"type:varchar(16)"`
	Position           int             `gorm:"not null"`
	CreatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ExpenseFromEntity creates an ExpenseModel from a raw expense record.
func ExpenseFromEntity(groupID string, expense entity.RawExpense, position int) *ExpenseModel {
	m := &ExpenseModel{
		ID:          uuid.New(),
		GroupID:     groupID,
		ExternalID:  expense.ID,
		Description: expense.Description,
		Date:        expense.Date,
		DateParsed:  parseStoredDate(expense.Date),
		Amount:      expense.Amount,
		IsIncome:    expense.IsIncome,
		Position:    position,
		CreatedAt:   time.Now().UTC(),
	}

	if expense.Category != nil {
		m.CategoryExternalID = &expense.Category.ID
		m.CategoryName = &expense.Category.Name
		m.CategoryEmoji = &expense.Category.Emoji
	}

	for i, share := range expense.Shares {
		m.Shares = append(m.Shares, ExpenseShareModel{
			ID:          uuid.New(),
			ExpenseID:   m.ID,
			UserID:      share.UserID,
			ShareAmount: share.ShareAmount,
			Position:    i,
		})
	}

	return m
}

// ToEntity converts an ExpenseModel back to a raw expense record.
func (m *ExpenseModel) ToEntity() entity.RawExpense {
	expense := entity.RawExpense{
		ID:          m.ExternalID,
		Description: m.Description,
		Date:        m.Date,
		Amount:      m.Amount,
		IsIncome:    m.IsIncome,
		Category:    categoryFromColumns(m.CategoryExternalID, m.CategoryName, m.CategoryEmoji),
	}

	for _, share := range m.Shares {
		expense.Shares = append(expense.Shares, entity.ExpenseShare{
			UserID:      share.UserID,
			ShareAmount: share.ShareAmount,
		})
	}

	return expense
}

// IncomeFromEntity creates an IncomeModel from a raw income record.
func IncomeFromEntity(groupID string, income entity.RawIncome, position int) *IncomeModel {
	m := &IncomeModel{
		ID:          uuid.New(),
		GroupID:     groupID,
		ExternalID:  income.ID,
		Description: income.Description,
		Date:        income.Date,
		DateParsed:  parseStoredDate(income.Date),
		Amount:      income.Amount,
		Position:    position,
		CreatedAt:   time.Now().UTC(),
	}

	if income.Category != nil {
		m.CategoryExternalID = &income.Category.ID
		m.CategoryName = &income.Category.Name
		m.CategoryEmoji = &income.Category.Emoji
	}

	return m
}

// ToEntity converts an IncomeModel back to a raw income record.
func (m *IncomeModel) ToEntity() entity.RawIncome {
	return entity.RawIncome{
		ID:          m.ExternalID,
		Description: m.Description,
		Date:        m.Date,
		Amount:      m.Amount,
		Category:    categoryFromColumns(m.CategoryExternalID, m.CategoryName, m.CategoryEmoji),
	}
}

func categoryFromColumns(id, name, emoji *string) *entity.RawCategory {
	if id == nil && name == nil && emoji == nil {
		return nil
	}

	category := &entity.RawCategory{}
	if id != nil {
		category.ID = *id
	}
	if name != nil {
		category.Name = *name
	}
	if emoji != nil {
		category.Emoji = *emoji
	}
	return category
}

func parseStoredDate(raw string) *time.Time {
	parsed, err := entity.ParseEntryDate(raw)
	if err != nil {
		return nil
	}
	return &parsed
}
