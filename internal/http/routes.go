// Package httpx exposes the RMSGAS optimization API over HTTP.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Portfolios      *service.PortfolioService
	Scenarios       *service.ScenarioService
	ShipperPlanning *service.ShipperPlanningService
	Optimizations   *service.OptimizationService
	OptResults      *service.OptResultService
	DB              core.DBPinger // Optional: backs /check/db/connection
	CORSOrigins     []string      // Optional: defaults to "*"
	Logger          *slog.Logger  // Optional: request and panic logging
}

// NewRouter creates the API router wrapped in recovery, request logging and CORS middleware.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /check/db/connection", &DBCheckHandler{DB: services.DB, Logger: logger})

	registerPortfolioRoutes(mux, &PortfolioHandlers{Svc: services.Portfolios})
	registerScenarioRoutes(mux, &ScenarioHandlers{Svc: services.Scenarios})
	registerShipperPlanningRoutes(mux, &ShipperPlanningHandlers{Svc: services.ShipperPlanning})
	registerOptimizationRoutes(mux, &OptimizationHandlers{Svc: services.Optimizations})
	registerOptResultRoutes(mux, &OptResultHandlers{Svc: services.OptResults})

	mux.HandleFunc("/", notFoundHandler)

	var handler http.Handler = mux
	handler = CORS(services.CORSOrigins)(handler)
	handler = Logging(logger)(handler)
	return Recover(logger)(handler)
}

// notFoundHandler answers any request no other pattern matched.
func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("route not found"),
	})
}

func registerPortfolioRoutes(mux *http.ServeMux, h *PortfolioHandlers) {
	registerCRUD(mux, crudRoutes{
		Base:    "/portfolio",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
	})
}

func registerScenarioRoutes(mux *http.ServeMux, h *ScenarioHandlers) {
	registerCRUD(mux, crudRoutes{
		Base:    "/scenario",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
	})
	mux.HandleFunc("GET /scenario/portfolio/{portfolioId}", h.ListByPortfolio)
}

func registerShipperPlanningRoutes(mux *http.ServeMux, h *ShipperPlanningHandlers) {
	mux.HandleFunc("GET /shipper-planning", h.List)
	mux.HandleFunc("POST /shipper-planning/bulk", h.BulkCreate)
	mux.HandleFunc("DELETE /shipper-planning/bulk", h.BulkDelete)
}

func registerOptimizationRoutes(mux *http.ServeMux, h *OptimizationHandlers) {
	mux.HandleFunc("POST /optimization", h.Create)
	mux.HandleFunc("GET /optimization", h.List)
	mux.HandleFunc("GET /optimization/{id}", h.GetByID)
	mux.HandleFunc("PUT /optimization/{id}", h.Update)
	mux.HandleFunc("GET /optimization/{id}/result", h.Results)
	mux.HandleFunc("DELETE /optimization/{id}/result", h.DeleteResults)
	mux.HandleFunc("POST /optimization/{id}/regenerate", h.Regenerate)
	mux.HandleFunc("GET /optimization/{id}/summary", h.Summary)
}

func registerOptResultRoutes(mux *http.ServeMux, h *OptResultHandlers) {
	registerCRUD(mux, crudRoutes{
		Base:    "/opt-result",
		Create:  h.Create,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
	})
}

// crudRoutes describes the standard routes of a resource. List is optional.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

// registerCRUD registers standard CRUD routes for a resource base path, applying mw if non-nil.
func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	if cfg.List != nil {
		mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	}
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
