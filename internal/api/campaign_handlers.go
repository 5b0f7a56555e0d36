package api

import (
	"net/http"
)

func (h *Handlers) SendCampaign(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ContactIDs []string `json:"contactIds"`
		TemplateID string   `json:"templateId"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if len(input.ContactIDs) == 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "contactIds is required")
		return
	}
	for _, id := range input.ContactIDs {
		if !isUUID(id) {
			respondError(w, http.StatusBadRequest, codeValidation, "contactIds must be valid ids")
			return
		}
	}
	if !isUUID(input.TemplateID) {
		respondError(w, http.StatusBadRequest, codeValidation, "templateId must be a valid id")
		return
	}

	result, err := h.campaign.Send(r.Context(), input.ContactIDs, input.TemplateID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) PreviewCampaign(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ContactID  string `json:"contactId"`
		TemplateID string `json:"templateId"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if !isUUID(input.ContactID) || !isUUID(input.TemplateID) {
		respondError(w, http.StatusBadRequest, codeValidation, "contactId and templateId must be valid ids")
		return
	}

	preview, err := h.campaign.RenderPreview(r.Context(), input.ContactID, input.TemplateID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}
