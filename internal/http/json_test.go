package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"not found", apperrors.NotFound("portfolio not found"), http.StatusNotFound, "not_found", "portfolio not found"},
		{"validation", apperrors.Validation("shipper is required"), http.StatusBadRequest, "validation", "shipper is required"},
		{"conflict", apperrors.Conflict("portfolio already exists"), http.StatusConflict, "conflict", "portfolio already exists"},
		{
			"foreign key",
			apperrors.Wrap(errors.New("fk"), apperrors.ErrCodeForeignKey, "optimization does not exist"),
			http.StatusConflict, "foreign_key", "optimization does not exist",
		},
		{
			"timeout",
			apperrors.Timeout(context.DeadlineExceeded, "list results"),
			http.StatusGatewayTimeout, "timeout", "",
		},
		{
			"wrapped persistence",
			fmt.Errorf("list: %w", apperrors.Persistence(errors.New("boom"), "query failed")),
			http.StatusInternalServerError, "persistence", "query failed",
		},
		{"plain error", errors.New("secret detail"), http.StatusInternalServerError, "internal", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantCode, body["error"])
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
			assert.NotContains(t, body["message"], "secret detail")
		})
	}
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"a","extra":1}`))
	rec := httptest.NewRecorder()

	assert.False(t, DecodeJSON(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", decodeErrorBody(t, rec)["error"])
}
