package interfaces

import (
	"context"

	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
)

// Resilience coordinates the risk data pipeline and exposes dashboard
// state to controllers.
type Resilience interface {
	// Refresh performs one backend round trip, projects the response and
	// stores the resulting snapshot. Safe to call repeatedly; overlapping
	// calls are not deduplicated and the last response to resolve wins.
	Refresh(ctx context.Context) (*model.DashboardState, error)

	// Dashboard returns the current fetch phase, error and snapshot
	Dashboard(ctx context.Context) (*model.DashboardState, error)

	// Query proxies a document question to the backend
	Query(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error)

	// SimulateDeparture proxies a departure simulation to the backend
	SimulateDeparture(ctx context.Context, req *model.DepartureRequest) (*model.DepartureImpact, error)

	// RecommendOnboarding proxies an onboarding plan request to the backend
	RecommendOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingPlan, error)
}

// Advisor generates recommendation text from a projected snapshot when
// the backend does not supply any.
type Advisor interface {
	Recommend(ctx context.Context, snapshot *model.Snapshot) (string, error)
}
