package httpx

import (
	"net/http"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/service"
)

// ScenarioHandlers provides HTTP handlers for scenarios.
type ScenarioHandlers struct {
	Svc *service.ScenarioService
}

// Create handles POST /scenario.
func (h *ScenarioHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateScenarioRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	sc, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, sc)
}

// List handles GET /scenario.
func (h *ScenarioHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	h.writeList(w, r, items, err)
}

// ListByPortfolio handles GET /scenario/portfolio/{portfolioId}.
func (h *ScenarioHandlers) ListByPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := pathString(w, r, "portfolioId")
	if !ok {
		return
	}
	items, err := h.Svc.ListByPortfolio(r.Context(), portfolioID)
	h.writeList(w, r, items, err)
}

func (h *ScenarioHandlers) writeList(w http.ResponseWriter, r *http.Request, items []*model.Scenario, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []*model.Scenario{}
	}
	WriteJSON(w, http.StatusOK, items)
}

// GetByID handles GET /scenario/{id}.
func (h *ScenarioHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	sc, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, sc)
}

// Update handles PUT /scenario/{id}.
func (h *ScenarioHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	var req model.UpdateScenarioRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	sc, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, sc)
}

// Delete handles DELETE /scenario/{id}.
func (h *ScenarioHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !deleted {
		writeServiceError(w, r, apperrors.NotFoundf("scenario %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
