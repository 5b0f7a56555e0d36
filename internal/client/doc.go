// Package client provides a Go client for the outreach HTTP API plus an
// in-memory state store mirroring the server: cached contact and template
// lists, selection state for campaign sends, and a background draft
// poller. Mutations go through the API first except deletes, which apply
// optimistically and roll back on failure.
package client
