package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ignite/outreach-hub/internal/domain"
)

func (h *Handlers) ListDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.inbox.Drafts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if drafts == nil {
		drafts = []domain.DraftWithContact{}
	}
	respondJSON(w, http.StatusOK, drafts)
}

func (h *Handlers) ContactHistory(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "contactId")
	if !ok {
		return
	}

	history, err := h.inbox.History(r.Context(), contactID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if history == nil {
		history = []domain.Message{}
	}
	respondJSON(w, http.StatusOK, history)
}

func (h *Handlers) SimulateIncoming(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ContactID string `json:"contactId"`
		Content   string `json:"content"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if !isUUID(input.ContactID) {
		respondError(w, http.StatusBadRequest, codeValidation, "contactId must be a valid id")
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "content is required")
		return
	}

	draft, err := h.inbox.SimulateIncoming(r.Context(), input.ContactID, input.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, draft)
}

func (h *Handlers) ApproveDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	// Content is optional: when present it replaces the draft body. An
	// absent or empty body (including chunked requests with no payload)
	// approves the draft as generated.
	var input struct {
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && err != io.EOF {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid JSON body")
		return
	}

	sent, err := h.inbox.ApproveDraft(r.Context(), id, input.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sent)
}

func (h *Handlers) RejectDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.inbox.RejectDraft(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
