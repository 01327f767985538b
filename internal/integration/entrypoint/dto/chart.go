package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview/backend/internal/application/usecase/chart"
	"github.com/spendview/backend/internal/application/usecase/entries"
	"github.com/spendview/backend/internal/application/usecase/window"
)

// RangeResponse represents the active viewing window.
type RangeResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Display   string    `json:"display"`
	CanGoBack bool      `json:"can_go_back"`
}

// ToRangeResponse converts a window output to a RangeResponse DTO.
func ToRangeResponse(output *window.GetRangeOutput) RangeResponse {
	return RangeResponse{
		Start:     output.Start,
		End:       output.End,
		Display:   output.Display,
		CanGoBack: output.CanGoBack,
	}
}

// EntryResponse represents one unified entry.
type EntryResponse struct {
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

// ListEntriesResponse represents the windowed entry list.
type ListEntriesResponse struct {
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Display   string          `json:"display"`
	CanGoBack bool            `json:"can_go_back"`
	Entries   []EntryResponse `json:"entries"`
}

// ToListEntriesResponse converts a list output to a ListEntriesResponse DTO.
func ToListEntriesResponse(output *entries.ListEntriesOutput) ListEntriesResponse {
	return ListEntriesResponse{
		Start:     output.Start,
		End:       output.End,
		Display:   output.Display,
		CanGoBack: output.CanGoBack,
		Entries:   toEntryResponses(output.Entries),
	}
}

// SearchEntriesResponse represents the search results.
type SearchEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// ToSearchEntriesResponse converts a search output to a SearchEntriesResponse DTO.
func ToSearchEntriesResponse(output *entries.SearchEntriesOutput) SearchEntriesResponse {
	return SearchEntriesResponse{
		Entries: toEntryResponses(output.Entries),
		Total:   output.Total,
	}
}

// SyncEntriesResponse reports the counts of the stored snapshot.
type SyncEntriesResponse struct {
	ExpenseCount int `json:"expense_count"`
	IncomeCount  int `json:"income_count"`
}

// ToSyncEntriesResponse converts a sync output to a SyncEntriesResponse DTO.
func ToSyncEntriesResponse(output *entries.SyncEntriesOutput) SyncEntriesResponse {
	return SyncEntriesResponse{
		ExpenseCount: output.ExpenseCount,
		IncomeCount:  output.IncomeCount,
	}
}

// ChartPointResponse represents one bucket of the chart series.
type ChartPointResponse struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	LineValue decimal.Decimal `json:"line_value"`
	Fill      string          `json:"fill"`
}

// ChartResponse represents the chart series with its window.
type ChartResponse struct {
	Start   time.Time            `json:"start"`
	End     time.Time            `json:"end"`
	Display string               `json:"display"`
	Points  []ChartPointResponse `json:"points"`
}

// ToChartResponse converts a chart output to a ChartResponse DTO.
func ToChartResponse(output *chart.GetChartOutput) ChartResponse {
	points := make([]ChartPointResponse, 0, len(output.Points))
	for _, p := range output.Points {
		points = append(points, ChartPointResponse{
			Name:      p.Name,
			Amount:    p.Amount,
			LineValue: p.LineValue,
			Fill:      string(p.Fill),
		})
	}
	return ChartResponse{
		Start:   output.Start,
		End:     output.End,
		Display: output.Display,
		Points:  points,
	}
}

func toEntryResponses(items []entries.EntryItem) []EntryResponse {
	out := make([]EntryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, EntryResponse{
			ID:              item.ID,
			Description:     item.Description,
			Category:        item.Category,
			CategoryID:      item.CategoryID,
			Emoji:           item.Emoji,
			Date:            item.Date,
			Amount:          item.Amount,
			IsIncome:        item.IsIncome,
			IsPersonalShare: item.IsPersonalShare,
			OriginalAmount:  item.OriginalAmount,
		})
	}
	return out
}
