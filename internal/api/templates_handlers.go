package api

import (
	"net/http"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/templates"
)

func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.templates.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.EmailTemplate{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var input templates.Input
	if !decodeJSON(w, r, &input) {
		return
	}

	created, err := h.templates.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var input templates.Input
	if !decodeJSON(w, r, &input) {
		return
	}

	updated, err := h.templates.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.templates.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
