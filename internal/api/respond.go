package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ignite/outreach-hub/internal/service/campaign"
	"github.com/ignite/outreach-hub/internal/service/contacts"
	"github.com/ignite/outreach-hub/internal/service/inbox"
	"github.com/ignite/outreach-hub/internal/service/templates"
)

// Error codes returned in the error envelope.
const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL_ERROR"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]errorBody{"error": {Message: message, Code: code}})
}

// respondServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contacts.ErrNotFound),
		errors.Is(err, templates.ErrNotFound),
		errors.Is(err, inbox.ErrMessageNotFound),
		errors.Is(err, inbox.ErrContactNotFound),
		errors.Is(err, campaign.ErrTemplateNotFound),
		errors.Is(err, campaign.ErrContactNotFound):
		respondError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, contacts.ErrInvalid),
		errors.Is(err, templates.ErrInvalid),
		errors.Is(err, campaign.ErrNoContacts):
		respondError(w, http.StatusBadRequest, codeValidation, err.Error())
	default:
		log.Printf("[api] internal error: %v", err)
		respondError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decodeJSON parses the request body into dst, rejecting malformed JSON
// before the service layer sees it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid JSON body")
		return false
	}
	return true
}
