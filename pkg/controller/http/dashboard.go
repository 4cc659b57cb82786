package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/utils/apperr"
)

// DashboardHandler serves the risk dashboard API
type DashboardHandler struct {
	resilienceUC interfaces.Resilience
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(resilienceUC interfaces.Resilience) *DashboardHandler {
	return &DashboardHandler{
		resilienceUC: resilienceUC,
	}
}

// HandleDashboard returns the current fetch phase, error and snapshot.
// Stale data from the last successful refresh remains available while
// the phase is "error".
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	state, err := h.resilienceUC.Dashboard(r.Context())
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

// HandleRefresh triggers one refresh cycle and returns the resulting
// state. A backend failure still responds with the state so clients see
// the recorded error message alongside any stale snapshot.
func (h *DashboardHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	state, err := h.resilienceUC.Refresh(r.Context())
	if err != nil {
		apperr.Handle(r.Context(), err)
		if state == nil {
			writeError(w, r, err, http.StatusBadGateway)
			return
		}
		writeJSON(w, r, http.StatusBadGateway, state)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

// HandleQuery proxies a document question to the backend
func (h *DashboardHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req model.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := h.resilienceUC.Query(r.Context(), &req)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

// HandleSimulateDeparture proxies a departure simulation to the backend
func (h *DashboardHandler) HandleSimulateDeparture(w http.ResponseWriter, r *http.Request) {
	var req model.DepartureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	impact, err := h.resilienceUC.SimulateDeparture(r.Context(), &req)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, r, http.StatusOK, impact)
}

// HandleRecommendOnboarding proxies an onboarding plan request to the
// backend
func (h *DashboardHandler) HandleRecommendOnboarding(w http.ResponseWriter, r *http.Request) {
	var req model.OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	plan, err := h.resilienceUC.RecommendOnboarding(r.Context(), &req)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, r, http.StatusOK, plan)
}
