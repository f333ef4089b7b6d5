package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/target/rmsgas-api/internal/core"
)

const (
	healthResponse = `{"status":"ok"}`
	dbCheckTimeout = 5 * time.Second
)

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

type dbCheckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DBCheckHandler reports whether the database answers a ping.
type DBCheckHandler struct {
	DB     core.DBPinger
	Logger *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *DBCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		WriteJSON(w, http.StatusInternalServerError, dbCheckResponse{Message: "Database not configured"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), dbCheckTimeout)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		if h.Logger != nil {
			h.Logger.ErrorContext(r.Context(), "database connection check failed", "error", err)
		}
		WriteJSON(w, http.StatusInternalServerError, dbCheckResponse{
			Message: "Database connection failed: " + err.Error(),
		})
		return
	}
	WriteJSON(w, http.StatusOK, dbCheckResponse{Success: true, Message: "Database connection successful"})
}
