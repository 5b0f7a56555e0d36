package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ignite/outreach-hub/internal/domain"
	"github.com/ignite/outreach-hub/internal/service/campaign"
	"github.com/ignite/outreach-hub/internal/service/contacts"
	"github.com/ignite/outreach-hub/internal/service/templates"
)

// APIError is a decoded server error envelope.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// Client talks to the outreach API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates an API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error APIError `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
		}
		apiErr := envelope.Error
		apiErr.Status = resp.StatusCode
		return &apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	var out []domain.Contact
	err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &out)
	return out, err
}

func (c *Client) CreateContact(ctx context.Context, input contacts.CreateInput) (*domain.Contact, error) {
	var out domain.Contact
	if err := c.do(ctx, http.MethodPost, "/api/contacts", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BulkUpsertContacts(ctx context.Context, inputs []contacts.CreateInput) ([]domain.Contact, error) {
	var out []domain.Contact
	err := c.do(ctx, http.MethodPost, "/api/contacts/bulk", inputs, &out)
	return out, err
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+id, nil, nil)
}

func (c *Client) ListTemplates(ctx context.Context) ([]domain.EmailTemplate, error) {
	var out []domain.EmailTemplate
	err := c.do(ctx, http.MethodGet, "/api/templates", nil, &out)
	return out, err
}

func (c *Client) CreateTemplate(ctx context.Context, input templates.Input) (*domain.EmailTemplate, error) {
	var out domain.EmailTemplate
	if err := c.do(ctx, http.MethodPost, "/api/templates", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTemplate(ctx context.Context, id string, input templates.Input) (*domain.EmailTemplate, error) {
	var out domain.EmailTemplate
	if err := c.do(ctx, http.MethodPut, "/api/templates/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/templates/"+id, nil, nil)
}

func (c *Client) Drafts(ctx context.Context) ([]domain.DraftWithContact, error) {
	var out []domain.DraftWithContact
	err := c.do(ctx, http.MethodGet, "/api/inbox/drafts", nil, &out)
	return out, err
}

func (c *Client) History(ctx context.Context, contactID string) ([]domain.Message, error) {
	var out []domain.Message
	err := c.do(ctx, http.MethodGet, "/api/inbox/messages/"+contactID, nil, &out)
	return out, err
}

func (c *Client) SimulateIncoming(ctx context.Context, contactID, content string) (*domain.Message, error) {
	var out domain.Message
	err := c.do(ctx, http.MethodPost, "/api/inbox/simulate-incoming", map[string]string{
		"contactId": contactID,
		"content":   content,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveDraft approves a pending draft. A non-nil content replaces the
// draft body before sending.
func (c *Client) ApproveDraft(ctx context.Context, id string, content *string) (*domain.Message, error) {
	var body interface{}
	if content != nil {
		body = map[string]string{"content": *content}
	}
	var out domain.Message
	if err := c.do(ctx, http.MethodPost, "/api/inbox/drafts/"+id+"/approve", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectDraft(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/inbox/drafts/"+id, nil, nil)
}

func (c *Client) SendCampaign(ctx context.Context, contactIDs []string, templateID string) (*campaign.SendResult, error) {
	var out campaign.SendResult
	err := c.do(ctx, http.MethodPost, "/api/campaign/send", map[string]interface{}{
		"contactIds": contactIDs,
		"templateId": templateID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PreviewCampaign(ctx context.Context, contactID, templateID string) (*campaign.Preview, error) {
	var out campaign.Preview
	err := c.do(ctx, http.MethodPost, "/api/campaign/preview", map[string]string{
		"contactId":  contactID,
		"templateId": templateID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
