package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
	"github.com/mnemosyne-lab/mnemosyne/pkg/utils/async"
)

// Resilience coordinates the risk data pipeline: one backend round trip
// per refresh, projection, and snapshot storage. The fetch lifecycle is
// idle -> loading -> (loaded | error); refresh re-enters loading from
// either terminal phase. A failed refresh keeps the previous snapshot
// visible (stale-while-error).
type Resilience struct {
	backend  interfaces.BackendClient
	repo     interfaces.Repository
	fixtures interfaces.FixtureGenerator
	advisor  interfaces.Advisor
	now      func() time.Time

	mu      sync.Mutex
	phase   types.FetchPhase
	lastErr string
}

// ResilienceOption configures a Resilience use case
type ResilienceOption func(*Resilience)

// WithAdvisor enables local recommendation generation for responses the
// backend returns without recommendation text
func WithAdvisor(advisor interfaces.Advisor) ResilienceOption {
	return func(uc *Resilience) {
		uc.advisor = advisor
	}
}

// WithClock overrides the snapshot timestamp source (tests)
func WithClock(now func() time.Time) ResilienceOption {
	return func(uc *Resilience) {
		uc.now = now
	}
}

// NewResilience creates a new Resilience use case
func NewResilience(backendClient interfaces.BackendClient, repo interfaces.Repository, fixtures interfaces.FixtureGenerator, opts ...ResilienceOption) *Resilience {
	uc := &Resilience{
		backend:  backendClient,
		repo:     repo,
		fixtures: fixtures,
		now:      time.Now,
		phase:    types.FetchPhaseIdle,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Refresh performs one backend round trip and replaces the stored
// snapshot on success. Overlapping calls are not deduplicated; the last
// response to resolve wins.
func (uc *Resilience) Refresh(ctx context.Context) (*model.DashboardState, error) {
	uc.setPhase(types.FetchPhaseLoading, "")

	analysis, err := uc.backend.RiskAnalysis(ctx, true)
	if err != nil {
		return uc.fail(ctx, err)
	}

	snapshot, err := uc.project(ctx, analysis)
	if err != nil {
		return uc.fail(ctx, goerr.Wrap(err, "failed to project risk analysis"))
	}

	if snapshot.Recommendations == "" && uc.advisor != nil {
		rec, err := uc.advisor.Recommend(ctx, snapshot)
		if err != nil {
			// Advisory only; a failed generation never fails the refresh
			ctxlog.From(ctx).Warn("recommendation generation failed", "error", err)
		} else {
			snapshot.Recommendations = rec
		}
	}

	if err := uc.repo.PutSnapshot(ctx, snapshot); err != nil {
		return uc.fail(ctx, goerr.Wrap(err, "failed to store snapshot"))
	}

	uc.setPhase(types.FetchPhaseLoaded, "")
	ctxlog.From(ctx).Info("dashboard snapshot refreshed",
		"snapshotID", snapshot.ID,
		"topics", len(snapshot.Topics),
		"documents", len(snapshot.Documents),
	)

	return uc.Dashboard(ctx)
}

// Dashboard returns the current fetch phase, error message and the last
// successful snapshot
func (uc *Resilience) Dashboard(ctx context.Context) (*model.DashboardState, error) {
	snapshot, err := uc.repo.GetSnapshot(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load snapshot")
	}

	uc.mu.Lock()
	phase, lastErr := uc.phase, uc.lastErr
	uc.mu.Unlock()

	return &model.DashboardState{
		Phase:    phase,
		Error:    lastErr,
		Snapshot: snapshot,
	}, nil
}

// Query proxies a document question to the backend
func (uc *Resilience) Query(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error) {
	result, err := uc.backend.Query(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "query failed")
	}
	return result, nil
}

// SimulateDeparture proxies a departure simulation to the backend
func (uc *Resilience) SimulateDeparture(ctx context.Context, req *model.DepartureRequest) (*model.DepartureImpact, error) {
	impact, err := uc.backend.SimulateDeparture(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "departure simulation failed")
	}
	return impact, nil
}

// RecommendOnboarding proxies an onboarding plan request to the backend
func (uc *Resilience) RecommendOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingPlan, error) {
	plan, err := uc.backend.RecommendOnboarding(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "onboarding recommendation failed")
	}
	return plan, nil
}

// StartBackgroundRefresh refreshes once immediately and then on the given
// interval until ctx is cancelled. Zero or negative interval refreshes
// only once.
func (uc *Resilience) StartBackgroundRefresh(ctx context.Context, interval time.Duration) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		if _, err := uc.Refresh(ctx); err != nil {
			ctxlog.From(ctx).Warn("initial refresh failed", "error", err)
		}
		return nil
	})

	if interval <= 0 {
		return
	}

	async.Repeat(ctx, interval, func(ctx context.Context) error {
		if _, err := uc.Refresh(ctx); err != nil {
			ctxlog.From(ctx).Warn("background refresh failed", "error", err)
		}
		return nil
	})
}

func (uc *Resilience) setPhase(phase types.FetchPhase, lastErr string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.phase = phase
	uc.lastErr = lastErr
}

// fail records the error and returns the current state, leaving any
// previously loaded snapshot untouched
func (uc *Resilience) fail(ctx context.Context, err error) (*model.DashboardState, error) {
	uc.setPhase(types.FetchPhaseError, err.Error())
	ctxlog.From(ctx).Error("dashboard refresh failed", "error", err)

	state, stateErr := uc.Dashboard(ctx)
	if stateErr != nil {
		return nil, stateErr
	}
	return state, err
}
