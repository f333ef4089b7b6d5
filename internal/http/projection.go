package httpx

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const maxQueryLen = 512

// project applies a JMESPath expression to v as rendered in JSON. An empty expression returns v
// unchanged.
func project(expr string, v any) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return v, nil
	}
	if len(expr) > maxQueryLen {
		return nil, apperrors.Validationf("query must be at most %d characters", maxQueryLen)
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid query")
	}

	// Search works on the JSON shape so field names match the response tags.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode projection input: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode projection input: %w", err)
	}

	out, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "query evaluation failed")
	}
	return out, nil
}
