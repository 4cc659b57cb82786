package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
)

// Memory implements Repository with in-process storage. It holds exactly
// the latest snapshot; a new snapshot fully replaces the previous one.
type Memory struct {
	mu       sync.RWMutex
	snapshot *model.Snapshot
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{}
}

// PutSnapshot replaces the stored snapshot
func (m *Memory) PutSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return goerr.New("snapshot is nil")
	}
	if snapshot.ID == "" {
		return goerr.New("snapshot ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to keep the stored snapshot immutable
	m.snapshot = snapshot.Clone()
	return nil
}

// GetSnapshot returns a copy of the stored snapshot, or nil when no
// refresh has succeeded yet
func (m *Memory) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snapshot.Clone(), nil
}

// Close releases repository resources
func (m *Memory) Close() error {
	return nil
}
