package httpx

import (
	"net/http"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/service"
)

// OptResultHandlers provides HTTP handlers for single result rows.
type OptResultHandlers struct {
	Svc *service.OptResultService
}

// Create handles POST /opt-result.
func (h *OptResultHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOptResultRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, apperrors.Validation(err.Error()))
		return
	}

	row, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

// GetByID handles GET /opt-result/{id}.
func (h *OptResultHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	row, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

// Update handles PUT /opt-result/{id}.
func (h *OptResultHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateOptResultRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	row, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

// Delete handles DELETE /opt-result/{id}.
func (h *OptResultHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !deleted {
		writeServiceError(w, r, apperrors.NotFoundf("result %d not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
