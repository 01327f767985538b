// Package entries contains entry unification and listing use cases.
package entries

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/domain/entity"
)

// ShareResolution is the outcome of resolving one expense against the
// personal-share view.
type ShareResolution struct {
	Amount          decimal.Decimal
	IsPersonalShare bool
	OriginalAmount  *decimal.Decimal
	UserShare       *entity.ExpenseShare
}

// ResolveShare rewrites an expense amount to a single participant's share
// of a split group expense. Outside the personal view, or when the expense
// has no shares, or when no participant matches, the full amount is
// returned untouched. A lookup miss is a silent fallback, never an error.
func ResolveShare(expense entity.RawExpense, personalView bool, userID string) ShareResolution {
	full := ShareResolution{Amount: expense.Amount}

	if !personalView || len(expense.Shares) == 0 || userID == "" {
		return full
	}

	viewerID, ok := normalizeUserID(userID)
	if !ok {
		return full
	}

	for i := range expense.Shares {
		shareID, ok := normalizeUserID(expense.Shares[i].UserID)
		if !ok || shareID != viewerID {
			continue
		}

		original := expense.Amount
		share := expense.Shares[i]
		return ShareResolution{
			Amount:          share.ShareAmount,
			IsPersonalShare: true,
			OriginalAmount:  &original,
			UserShare:       &share,
		}
	}

	return full
}

// normalizeUserID coerces a platform user id to a canonical integer.
// Platform ids arrive as numbers or numeric strings; a non-numeric id
// never matches any participant.
func normalizeUserID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
