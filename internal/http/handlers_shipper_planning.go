package httpx

import (
	"net/http"

	"github.com/target/rmsgas-api/internal/domain/model"
	"github.com/target/rmsgas-api/internal/service"
)

// ShipperPlanningHandlers provides HTTP handlers for shipper planning rows.
type ShipperPlanningHandlers struct {
	Svc *service.ShipperPlanningService
}

// List handles GET /shipper-planning.
func (h *ShipperPlanningHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context(), model.ShipperPlanningFilter{
		PortfolioID: queryString(r, "portfolio_id"),
		ScenarioID:  queryString(r, "scenario_id"),
		Shipper:     queryString(r, "shipper"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []*model.ShipperPlanning{}
	}
	WriteJSON(w, http.StatusOK, items)
}

// BulkCreate handles POST /shipper-planning/bulk. The body is a JSON array of rows.
func (h *ShipperPlanningHandlers) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var inputs []model.ShipperPlanningInput
	if !DecodeJSON(w, r, &inputs) {
		return
	}
	res, err := h.Svc.BulkCreate(r.Context(), inputs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, res)
}

// BulkDelete handles DELETE /shipper-planning/bulk.
func (h *ShipperPlanningHandlers) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var criteria model.ShipperPlanningDeleteCriteria
	if !DecodeJSON(w, r, &criteria) {
		return
	}
	res, err := h.Svc.BulkDelete(r.Context(), criteria)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}
