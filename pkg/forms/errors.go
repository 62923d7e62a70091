package forms

import "errors"

var (
	ErrUnknownForm  = errors.New("unknown form")
	ErrUnknownField = errors.New("unknown field")
	ErrDecode       = errors.New("failed to decode form data")
)
