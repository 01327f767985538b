package entries

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

// EntryItem is the serializable projection of a unified entry returned by
// the listing use cases.
type EntryItem struct {
	ID              string           `json:"id"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	CategoryID      string           `json:"category_id,omitempty"`
	Emoji           string           `json:"emoji,omitempty"`
	Date            time.Time        `json:"date"`
	Amount          decimal.Decimal  `json:"amount"`
	IsIncome        bool             `json:"is_income"`
	IsPersonalShare bool             `json:"is_personal_share"`
	OriginalAmount  *decimal.Decimal `json:"original_amount,omitempty"`
}

// toEntryItems projects unified entries into the response shape.
func toEntryItems(unified []entity.UnifiedEntry) []EntryItem {
	items := make([]EntryItem, 0, len(unified))
	for _, e := range unified {
		items = append(items, EntryItem{
			ID:              e.ID,
			Description:     e.Description,
			Category:        e.Category,
			CategoryID:      e.CategoryID,
			Emoji:           e.Emoji,
			Date:            e.Date,
			Amount:          e.Amount,
			IsIncome:        e.IsIncome,
			IsPersonalShare: e.IsPersonalShare,
			OriginalAmount:  e.OriginalAmount,
		})
	}
	return items
}
