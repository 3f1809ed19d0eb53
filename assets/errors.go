package assets

import "errors"

var (
	ErrModelNotFound = errors.New("model not found")
	ErrInvalidModel  = errors.New("invalid model")
)
