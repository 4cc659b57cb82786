package interfaces

import (
	"context"

	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
)

// BackendClient is the client surface of the external knowledge backend.
type BackendClient interface {
	// RiskAnalysis fetches the combined risk analysis. When recommend is
	// true the backend also generates textual recommendations.
	RiskAnalysis(ctx context.Context, recommend bool) (*model.RiskAnalysis, error)

	// Query asks a question over the document corpus.
	Query(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error)

	// SimulateDeparture computes the hypothetical impact of a person leaving.
	SimulateDeparture(ctx context.Context, req *model.DepartureRequest) (*model.DepartureImpact, error)

	// RecommendOnboarding generates an onboarding plan.
	RecommendOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingPlan, error)

	// Health checks backend liveness.
	Health(ctx context.Context) (*model.BackendHealth, error)
}
