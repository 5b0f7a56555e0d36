// Package campaign implements the bulk send dispatcher.
//
// A campaign is a one-shot fan-out: render a template per contact, send
// through the mail collaborator, and record the outcome on each contact
// independently. There is no batch transaction; a failure for one
// contact never aborts its siblings, and a crash mid-loop leaves a
// partially sent campaign (acceptable under the best-effort policy).
//
// The service depends on the interfaces defined in this package and
// should never import from api/. Repository implementations live in
// repository/postgres/.
package campaign
