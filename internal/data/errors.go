package data

import (
	"errors"

	apperrors "github.com/target/rmsgas-api/internal/errors"
)

// Shared sentinel errors for data-layer repositories.
var (
	// ErrStaleVersion is returned when a guarded progress update finds a newer version.
	ErrStaleVersion = apperrors.Conflict("optimization was modified concurrently")
	// ErrEmptyBatch is returned when a bulk insert receives no rows.
	ErrEmptyBatch = errors.New("no rows to insert")
)
