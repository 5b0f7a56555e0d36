package api

import (
	"net/http"
	"time"

	"github.com/ignite/outreach-hub/internal/service/campaign"
	"github.com/ignite/outreach-hub/internal/service/contacts"
	"github.com/ignite/outreach-hub/internal/service/inbox"
	"github.com/ignite/outreach-hub/internal/service/templates"
)

// Handlers holds the services behind the HTTP API.
type Handlers struct {
	contacts  *contacts.Service
	templates *templates.Service
	inbox     *inbox.Service
	campaign  *campaign.Service
}

// NewHandlers creates the handler set for the router.
func NewHandlers(
	contactsSvc *contacts.Service,
	templatesSvc *templates.Service,
	inboxSvc *inbox.Service,
	campaignSvc *campaign.Service,
) *Handlers {
	return &Handlers{
		contacts:  contactsSvc,
		templates: templatesSvc,
		inbox:     inboxSvc,
		campaign:  campaignSvc,
	}
}

// HealthCheck reports server liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
