package entries

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/domain/entity"
)

// SyncEntriesInput represents the input for replacing a group's entries
// with a fresh snapshot from the host platform.
type SyncEntriesInput struct {
	GroupID string
	Entries entity.AllEntries
}

// SyncEntriesOutput reports how many records the snapshot carried.
type SyncEntriesOutput struct {
	ExpenseCount int `json:"expense_count"`
	IncomeCount  int `json:"income_count"`
}

// SyncEntriesUseCase handles the full-replacement entry sync. The sync is
// snapshot-based: the stored set always mirrors the latest payload, with
// input order preserved for both collections.
type SyncEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSyncEntriesUseCase creates a new SyncEntriesUseCase instance.
func NewSyncEntriesUseCase(entryRepo adapter.EntryRepository) *SyncEntriesUseCase {
	return &SyncEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute replaces the group's stored entries with the given snapshot.
func (uc *SyncEntriesUseCase) Execute(
	ctx context.Context,
	input SyncEntriesInput,
) (*SyncEntriesOutput, error) {
	if err := uc.entryRepo.ReplaceAll(ctx, input.GroupID, input.Entries); err != nil {
		return nil, fmt.Errorf("failed to replace entries: %w", err)
	}

	slog.Info("Entries synced",
		"group_id", input.GroupID,
		"expenses", len(input.Entries.Expenses),
		"income", len(input.Entries.Income),
	)

	return &SyncEntriesOutput{
		ExpenseCount: len(input.Entries.Expenses),
		IncomeCount:  len(input.Entries.Income),
	}, nil
}
