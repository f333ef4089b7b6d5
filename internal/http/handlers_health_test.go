package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestHealthHandlerGET(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	healthHandler(rec, req)

	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}
	if body := rec.Body.String(); body != `{"status":"ok"}` {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestHealthHandlerHEAD(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/healthz", nil)
	rec := httptest.NewRecorder()

	healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if bodyLen := rec.Body.Len(); bodyLen != 0 {
		t.Fatalf("expected empty body for HEAD request, got %d bytes", bodyLen)
	}
}

func TestDBCheckHandler(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "reachable",
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Database connection successful",
		},
		{
			name:        "unreachable",
			pingErr:     errors.New("dial tcp: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Database connection failed: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := mocks.NewMockDBPinger(ctrl)
			db.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			h := &DBCheckHandler{DB: db, Logger: discardLogger()}
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check/db/connection", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body dbCheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantSuccess, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestDBCheckHandler_NoDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	(&DBCheckHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check/db/connection", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
