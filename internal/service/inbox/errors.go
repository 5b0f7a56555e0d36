package inbox

import "errors"

// Sentinel errors for the inbox service layer.
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrContactNotFound = errors.New("contact not found")
)
