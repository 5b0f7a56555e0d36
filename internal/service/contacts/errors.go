package contacts

import "errors"

// Sentinel errors for the contacts service layer.
var (
	ErrNotFound = errors.New("contact not found")
	ErrInvalid  = errors.New("invalid contact")
)
