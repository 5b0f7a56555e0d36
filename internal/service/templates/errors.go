package templates

import "errors"

// Sentinel errors for the templates service layer.
var (
	ErrNotFound = errors.New("template not found")
	ErrInvalid  = errors.New("invalid template")
)
