package model

import (
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// DashboardState is the consumable view of the fetch lifecycle. Snapshot
// holds the last successful result and survives a failed refresh, so stale
// data stays visible under an error banner.
type DashboardState struct {
	Phase    types.FetchPhase `json:"phase"`
	Error    string           `json:"error,omitempty"`
	Snapshot *Snapshot        `json:"snapshot,omitempty"`
}

// Loading returns true while a refresh is in flight
func (s *DashboardState) Loading() bool {
	return s.Phase == types.FetchPhaseLoading
}
