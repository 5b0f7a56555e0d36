package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/contacts"
)

func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	list, err := h.contacts.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.Contact{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var input contacts.CreateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	created, err := h.contacts.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) BulkUpsertContacts(w http.ResponseWriter, r *http.Request) {
	var inputs []contacts.CreateInput
	if !decodeJSON(w, r, &inputs) {
		return
	}
	if len(inputs) == 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "no contacts to import")
		return
	}

	upserted, err := h.contacts.BulkUpsert(r.Context(), inputs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, upserted)
}

func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// pathUUID reads a URL parameter and rejects ids that are not UUIDs, so
// malformed ids fail validation instead of reading as missing rows.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !isUUID(id) {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid id")
		return "", false
	}
	return id, true
}

// isUUID guards ids supplied in request bodies as well: the uuid columns
// would reject a malformed id with a 22P02 driver error, which must read
// as a validation failure, not an internal one.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
