// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default category display names applied during unification.
const (
	DefaultExpenseCategory = "Other"
	DefaultIncomeCategory  = "Income"
)

// DefaultIncomeEmoji is used for income entries with no resolvable emoji.
const DefaultIncomeEmoji = "💰"

// RawCategory is a category reference exactly as the host platform hands
// it over. Name may still carry a leading emoji glyph.
type RawCategory struct {
	ID    string
	Name  string
	Emoji string
}

// ExpenseShare is one participant's slice of a split group expense.
// UserID is the platform identifier and may arrive as a number or a
// numeric string; share amounts need not sum exactly to the parent
// expense, rounding differences are tolerated at this layer.
type ExpenseShare struct {
	UserID      string
	ShareAmount decimal.Decimal
}

// RawExpense is an expense record from the platform sync layer. Amount is
// the absolute magnitude; direction is carried by IsIncome. Date stays an
// ISO string until unification.
type RawExpense struct {
	ID          string
	Description string
	Date        string
	Amount      decimal.Decimal
	IsIncome    bool
	Category    *RawCategory
	Shares      []ExpenseShare
}

// RawIncome is an income record from the platform sync layer. Income is
// implicit; there is no type flag and there are no shares.
type RawIncome struct {
	ID          string
	Description string
	Date        string
	Amount      decimal.Decimal
	Category    *RawCategory
}

// AllEntries groups both raw collections. Either slice may be nil; absent
// is treated identically to empty.
type AllEntries struct {
	Expenses []RawExpense
	Income   []RawIncome
}

// UnifiedEntry is the canonical transaction record combining the expense
// and income shapes. Amount is always the magnitude attributable to the
// viewing context (full amount, or one participant's share), never the
// raw signed ledger value.
type UnifiedEntry struct {
	ID              string
	Description     string
	Category        string
	CategoryID      string
	Emoji           string
	Date            time.Time
	Amount          decimal.Decimal
	IsIncome        bool
	IsPersonalShare bool
	OriginalAmount  *decimal.Decimal
	UserShare       *ExpenseShare
}
