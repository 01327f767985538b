// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/spendview/backend/internal/domain/entity"
)

// EntryRepository stores the raw expense and income collections synced
// from the host platform, one pair of collections per group.
type EntryRepository interface {
	// ReplaceAll atomically replaces the stored raw collections for a group.
	// Input order is preserved and reproduced by FetchAll.
	ReplaceAll(ctx context.Context, groupID string, entries entity.AllEntries) error

	// FetchAll retrieves the raw collections for a group in sync order.
	// A group with no synced data yields empty collections, not an error.
	FetchAll(ctx context.Context, groupID string) (entity.AllEntries, error)

	// OldestEntryDate returns the date of the oldest entry across both
	// collections, or nil when no entry has a parseable date.
	OldestEntryDate(ctx context.Context, groupID string) (*time.Time, error)
}
