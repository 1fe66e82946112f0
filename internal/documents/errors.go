package documents

import "errors"

var (
	// ErrInvalidInput marks requests rejected before any write.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks lookups that matched no owned document.
	ErrNotFound = errors.New("document not found")
)
