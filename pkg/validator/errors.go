package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownFieldKind is returned when a field kind name is not recognised.
	ErrUnknownFieldKind = errors.New("unknown field kind")

	// ErrInvalidCatalog is returned when a message catalog cannot be decoded.
	ErrInvalidCatalog = errors.New("invalid message catalog")
)
