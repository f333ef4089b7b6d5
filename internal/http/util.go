package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// pathID parses the {id} path value as a positive integer. It writes a 400 and returns false
// when the value is malformed.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("id must be a positive integer"),
		})
		return 0, false
	}
	return id, true
}

// pathString returns a trimmed, non-empty path value or writes a 400.
func pathString(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	v := strings.TrimSpace(r.PathValue(key))
	if v == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New(key + " is required"),
		})
		return "", false
	}
	return v, true
}

// parseFlagQuery parses a 0/1 (or true/false) query parameter. A missing value yields nil.
func parseFlagQuery(r *http.Request, key string) (*bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil //nolint:nilnil // absent filter
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, errors.New(key + " must be 0 or 1")
	}
	return &b, nil
}

func queryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
