package types

// FetchPhase represents the state of the dashboard fetch lifecycle.
// Transitions: idle -> loading -> (loaded | error), and refresh re-enters
// loading from either terminal phase.
type FetchPhase string

const (
	FetchPhaseIdle    FetchPhase = "idle"
	FetchPhaseLoading FetchPhase = "loading"
	FetchPhaseLoaded  FetchPhase = "loaded"
	FetchPhaseError   FetchPhase = "error"
)

// String returns the string representation of the phase
func (p FetchPhase) String() string {
	return string(p)
}

// IsValid checks if the phase is valid
func (p FetchPhase) IsValid() bool {
	switch p {
	case FetchPhaseIdle, FetchPhaseLoading, FetchPhaseLoaded, FetchPhaseError:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the phase is a settled state
func (p FetchPhase) IsTerminal() bool {
	return p == FetchPhaseLoaded || p == FetchPhaseError
}
