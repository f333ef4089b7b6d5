package httpx

import (
	"net/http"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/service"
)

// OptimizationHandlers provides HTTP handlers for optimization jobs and their results.
type OptimizationHandlers struct {
	Svc *service.OptimizationService
}

type deleteResultsResponse struct {
	Success bool   `json:"success"`
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

// Create handles POST /optimization. Generation starts in the background.
func (h *OptimizationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOptimizationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	opt, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, opt)
}

// List handles GET /optimization. The percentage parameter is accepted and ignored.
func (h *OptimizationHandlers) List(w http.ResponseWriter, r *http.Request) {
	completed, err := parseFlagQuery(r, "is_completed")
	if err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	items, err := h.Svc.List(r.Context(), model.OptimizationFilter{
		PortfolioID: queryString(r, "portfolio_id"),
		ScenarioID:  queryString(r, "scenario_id"),
		Shipper:     queryString(r, "shipper"),
		IsCompleted: completed,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []*model.Optimization{}
	}
	WriteJSON(w, http.StatusOK, items)
}

// GetByID handles GET /optimization/{id}.
func (h *OptimizationHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	opt, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, opt)
}

// Update handles PUT /optimization/{id}.
func (h *OptimizationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateOptimizationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	opt, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, opt)
}

// Results handles GET /optimization/{id}/result. An optional query parameter holds a JMESPath
// expression applied to the result array.
func (h *OptimizationHandlers) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rows, err := h.Svc.Results(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out, err := project(r.URL.Query().Get("query"), rows)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// DeleteResults handles DELETE /optimization/{id}/result.
func (h *OptimizationHandlers) DeleteResults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	n, err := h.Svc.DeleteResults(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, deleteResultsResponse{
		Success: true,
		Deleted: n,
		Message: "optimization results deleted",
	})
}

// Regenerate handles POST /optimization/{id}/regenerate.
func (h *OptimizationHandlers) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	opt, err := h.Svc.Regenerate(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, opt)
}

// Summary handles GET /optimization/{id}/summary.
func (h *OptimizationHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sum, err := h.Svc.Summary(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if sum.Results == nil {
		sum.Results = []*model.OptResult{}
	}
	WriteJSON(w, http.StatusOK, sum)
}
