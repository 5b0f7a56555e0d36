package domain

import "time"

// EmailTemplate is a reusable subject/body pair with {{placeholder}} tokens.
// Messages store rendered content, never a template reference, so deleting
// a template does not cascade to past sends.
type EmailTemplate struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Subject   string    `json:"subject" db:"subject"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
