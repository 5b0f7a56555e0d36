// Package render substitutes contact fields into email template text
// using the Liquid template language.
package render

import (
	"fmt"
	"log"
	"sync"

	"github.com/osteele/liquid"

	"github.com/ignite/outreach-hub/internal/domain"
)

// FallbackContactPerson is substituted for {{contact}}/{{name}} when the
// contact has no named person on file.
const FallbackContactPerson = "Уважаемый клиент"

// Renderer renders template text against a contact. Rendering is pure:
// safe to call for previews without persisting anything, and concurrent
// use is fine (the template cache is a sync.Map).
type Renderer struct {
	engine *liquid.Engine
	cache  sync.Map // map[string]*liquid.Template
}

// NewRenderer creates a renderer with the standard contact filters.
func NewRenderer() *Renderer {
	engine := liquid.NewEngine()

	// Default value filter: {{ contact | default: "Friend" }}
	engine.RegisterFilter("default", func(value interface{}, defaultVal string) interface{} {
		if value == nil {
			return defaultVal
		}
		strVal := fmt.Sprintf("%v", value)
		if strVal == "" || strVal == "<nil>" {
			return defaultVal
		}
		return value
	})

	return &Renderer{engine: engine}
}

// Render substitutes {{company}}, {{contact}}/{{name}}, and {{email}} in
// text with the contact's fields. A missing contact person becomes
// FallbackContactPerson rather than an empty token. Body text is treated
// as opaque: no HTML escaping is applied. On a Liquid parse or render
// error the input text is returned unchanged (lax mode).
func (r *Renderer) Render(text string, c domain.Contact) string {
	tpl, err := r.parse(text)
	if err != nil {
		log.Printf("[render] parse error: %v", err)
		return text
	}

	out, err := tpl.RenderString(r.bindings(c))
	if err != nil {
		log.Printf("[render] render error: %v", err)
		return text
	}
	return out
}

// Preview renders a template's subject and body for one contact.
func (r *Renderer) Preview(tpl domain.EmailTemplate, c domain.Contact) (subject, body string) {
	return r.Render(tpl.Subject, c), r.Render(tpl.Body, c)
}

func (r *Renderer) parse(text string) (*liquid.Template, error) {
	if cached, ok := r.cache.Load(text); ok {
		return cached.(*liquid.Template), nil
	}
	tpl, err := r.engine.ParseString(text)
	if err != nil {
		return nil, err
	}
	r.cache.Store(text, tpl)
	return tpl, nil
}

func (r *Renderer) bindings(c domain.Contact) map[string]interface{} {
	person := FallbackContactPerson
	if c.ContactPerson != nil && *c.ContactPerson != "" {
		person = *c.ContactPerson
	}
	return map[string]interface{}{
		"company": c.CompanyName,
		"contact": person,
		// Legacy templates use {{name}} for the contact person.
		"name":  person,
		"email": c.Email,
	}
}
