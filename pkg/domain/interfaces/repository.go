package interfaces

import (
	"context"

	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
)

// Repository stores the current dashboard snapshot. Each successful
// refresh fully replaces the stored snapshot (last-write-wins); there is
// no history and no merging of partial updates.
type Repository interface {
	// PutSnapshot replaces the stored snapshot
	PutSnapshot(ctx context.Context, snapshot *model.Snapshot) error

	// GetSnapshot returns a copy of the stored snapshot, or nil when no
	// refresh has succeeded yet
	GetSnapshot(ctx context.Context) (*model.Snapshot, error)

	// Close releases repository resources
	Close() error
}
