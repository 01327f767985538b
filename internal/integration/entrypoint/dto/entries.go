package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

// FlexString decodes a JSON value that may arrive as a string or a
// number. The host platform is inconsistent about id fields; both forms
// normalize to the string representation.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the normalized string form.
func (f FlexString) String() string {
	return string(f)
}

// RawCategoryRequest is a category reference in the sync payload.
type RawCategoryRequest struct {
	ID    FlexString `json:"id"`
	Name  string     `json:"name"`
	Emoji string     `json:"emoji"`
}

// RawShareRequest is one participant's share in the sync payload.
type RawShareRequest struct {
	UserID      FlexString      `json:"user_id"`
	ShareAmount decimal.Decimal `json:"share_amount"`
}

// RawExpenseRequest is one expense record in the sync payload.
type RawExpenseRequest struct {
	ID          FlexString          `json:"id"`
	Description string              `json:"description"`
	Date        string              `json:"date"`
	Amount      decimal.Decimal     `json:"amount"`
	IsIncome    bool                `json:"is_income"`
	Category    *RawCategoryRequest `json:"category"`
	Shares      []RawShareRequest   `json:"shares"`
}

// RawIncomeRequest is one income record in the sync payload.
type RawIncomeRequest struct {
	ID          FlexString          `json:"id"`
	Description string              `json:"description"`
	Date        string              `json:"date"`
	Amount      decimal.Decimal     `json:"amount"`
	Category    *RawCategoryRequest `json:"category"`
}

// SyncEntriesRequest is the full-replacement sync payload.
type SyncEntriesRequest struct {
	Expenses []RawExpenseRequest `json:"expenses"`
	Income   []RawIncomeRequest  `json:"income"`
}

// ToAllEntries converts the sync payload to the domain shape.
func (r *SyncEntriesRequest) ToAllEntries() entity.AllEntries {
	entries := entity.AllEntries{}

	for _, expense := range r.Expenses {
		raw := entity.RawExpense{
			ID:          expense.ID.String(),
			Description: expense.Description,
			Date:        expense.Date,
			Amount:      expense.Amount,
			IsIncome:    expense.IsIncome,
			Category:    toRawCategory(expense.Category),
		}
		for _, share := range expense.Shares {
			raw.Shares = append(raw.Shares, entity.ExpenseShare{
				UserID:      share.UserID.String(),
				ShareAmount: share.ShareAmount,
			})
		}
		entries.Expenses = append(entries.Expenses, raw)
	}

	for _, income := range r.Income {
		entries.Income = append(entries.Income, entity.RawIncome{
			ID:          income.ID.String(),
			Description: income.Description,
			Date:        income.Date,
			Amount:      income.Amount,
			Category:    toRawCategory(income.Category),
		})
	}

	return entries
}

func toRawCategory(r *RawCategoryRequest) *entity.RawCategory {
	if r == nil {
		return nil
	}
	return &entity.RawCategory{
		ID:    r.ID.String(),
		Name:  r.Name,
		Emoji: r.Emoji,
	}
}

// ParseBoolParam interprets a three-state query flag: absent means nil,
// otherwise strconv rules apply.
func ParseBoolParam(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
