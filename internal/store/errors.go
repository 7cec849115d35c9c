package store

import domainerrors "github.com/clarityrx/clarity-server/internal/errors"

// Sentinel errors for store operations. These carry HTTP status
// mappings so handlers can pass them through unchanged.
var (
	ErrNotFound      = domainerrors.NotFound("record not found")
	ErrAlreadyExists = domainerrors.Conflict("record already exists")
)
