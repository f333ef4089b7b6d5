package httpx

import (
	"net/http"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/service"
)

// PortfolioHandlers provides HTTP handlers for portfolios.
type PortfolioHandlers struct {
	Svc *service.PortfolioService
}

// Create handles POST /portfolio.
func (h *PortfolioHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePortfolioRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	p, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, p)
}

// List handles GET /portfolio.
func (h *PortfolioHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []*model.Portfolio{}
	}
	WriteJSON(w, http.StatusOK, items)
}

// GetByID handles GET /portfolio/{id}.
func (h *PortfolioHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	p, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// Update handles PUT /portfolio/{id}.
func (h *PortfolioHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	var req model.UpdatePortfolioRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	p, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /portfolio/{id}.
func (h *PortfolioHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
		writeServiceError(w, r, apperrors.NotFoundf("portfolio %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
