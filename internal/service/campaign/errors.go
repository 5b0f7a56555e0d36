package campaign

import "errors"

// Sentinel errors for the campaign service layer.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrContactNotFound  = errors.New("contact not found")
	ErrNoContacts       = errors.New("no contacts selected")
)
