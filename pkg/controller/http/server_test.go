package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/mnemosyne-lab/mnemosyne/pkg/controller/http"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

type mockResilience struct {
	state      *model.DashboardState
	refreshErr error
}

func (m *mockResilience) Refresh(ctx context.Context) (*model.DashboardState, error) {
	if m.refreshErr != nil {
		return m.state, m.refreshErr
	}
	return m.state, nil
}

func (m *mockResilience) Dashboard(ctx context.Context) (*model.DashboardState, error) {
	return m.state, nil
}

func (m *mockResilience) Query(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error) {
	return &model.QueryResult{Answer: "Alice does"}, nil
}

func (m *mockResilience) SimulateDeparture(ctx context.Context, req *model.DepartureRequest) (*model.DepartureImpact, error) {
	return &model.DepartureImpact{Person: model.Person{ID: req.PersonID, Name: "Grace Kim"}}, nil
}

func (m *mockResilience) RecommendOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingPlan, error) {
	return &model.OnboardingPlan{Plan: "shadow Alice"}, nil
}

func newTestServer(t *testing.T, uc *mockResilience) *httptest.Server {
	t.Helper()
	server, err := controller.NewServer(context.Background(), "localhost:0", uc)
	gt.NoError(t, err)
	srv := httptest.NewServer(server.Handler)
	t.Cleanup(srv.Close)
	return srv
}

func loadedState() *model.DashboardState {
	return &model.DashboardState{
		Phase: types.FetchPhaseLoaded,
		Snapshot: &model.Snapshot{
			ID:     types.SnapshotID("snap-1"),
			Topics: []model.DashboardTopic{{ID: "1", Name: "Billing", RiskLevel: types.RiskLevelMedium, RiskScore: 53}},
			Documents: []model.DashboardDocument{
				{ID: "10", Title: "Billing Incident Playbook", Topic: "Billing", Owners: []string{"Alice Chen"}, LastEditor: "Alice Chen", PageViews: 250},
			},
			TeamResilienceScore: 47,
		},
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &mockResilience{state: loadedState()})

	resp, err := http.Get(srv.URL + "/health")
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "mnemosyne")
}

func TestHandleDashboard(t *testing.T) {
	t.Run("returns state with snapshot", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Get(srv.URL + "/api/dashboard")
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var state model.DashboardState
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
		gt.Equal(t, state.Phase, types.FetchPhaseLoaded)
		gt.A(t, state.Snapshot.Topics).Length(1)
		gt.Equal(t, state.Snapshot.Topics[0].Name, "Billing")
	})

	t.Run("idle state has no snapshot", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: &model.DashboardState{Phase: types.FetchPhaseIdle}})

		resp, err := http.Get(srv.URL + "/api/dashboard")
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var state model.DashboardState
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
		gt.Equal(t, state.Phase, types.FetchPhaseIdle)
		gt.V(t, state.Snapshot).Nil()
	})
}

func TestHandleRefresh(t *testing.T) {
	t.Run("success returns loaded state", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/refresh", "application/json", nil)
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)
	})

	t.Run("backend failure returns state with error and stale data", func(t *testing.T) {
		errorState := loadedState()
		errorState.Phase = types.FetchPhaseError
		errorState.Error = "db unavailable"
		srv := newTestServer(t, &mockResilience{state: errorState, refreshErr: goerr.New("db unavailable")})

		resp, err := http.Post(srv.URL+"/api/refresh", "application/json", nil)
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusBadGateway)

		var state model.DashboardState
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
		gt.Equal(t, state.Error, "db unavailable")
		gt.V(t, state.Snapshot).NotNil()
	})
}

func TestHandleQuery(t *testing.T) {
	t.Run("answers a question", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/query", "application/json",
			strings.NewReader(`{"question": "who owns billing?"}`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var result model.QueryResult
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		gt.Equal(t, result.Answer, "Alice does")
	})

	t.Run("rejects empty question", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/query", "application/json",
			strings.NewReader(`{}`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		gt.S(t, body["error"]).Contains("question is required")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/query", "application/json",
			strings.NewReader(`{broken`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})
}

func TestHandleSimulateDeparture(t *testing.T) {
	t.Run("simulates a departure", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/simulate-departure", "application/json",
			strings.NewReader(`{"person_id": 7}`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var impact model.DepartureImpact
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&impact))
		gt.Equal(t, impact.Person.Name, "Grace Kim")
	})

	t.Run("rejects non-positive person ID", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/simulate-departure", "application/json",
			strings.NewReader(`{"person_id": 0}`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})
}

func TestHandleRecommendOnboarding(t *testing.T) {
	t.Run("returns a plan", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/recommend-onboarding", "application/json",
			strings.NewReader(`{"mode": "team", "team": "platform"}`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var plan model.OnboardingPlan
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
		gt.Equal(t, plan.Plan, "shadow Alice")
	})

	t.Run("rejects invalid mode", func(t *testing.T) {
		srv := newTestServer(t, &mockResilience{state: loadedState()})

		resp, err := http.Post(srv.URL+"/api/recommend-onboarding", "application/json",
			strings.NewReader(`{"mode": "magic"}`))
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &mockResilience{state: loadedState()})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/dashboard", nil)
	gt.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusNoContent)
	gt.Equal(t, resp.Header.Get("Access-Control-Allow-Origin"), "*")
}

func TestHomePage(t *testing.T) {
	srv := newTestServer(t, &mockResilience{state: loadedState()})

	resp, err := http.Get(srv.URL + "/")
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	gt.S(t, resp.Header.Get("Content-Type")).Contains("text/html")
}
