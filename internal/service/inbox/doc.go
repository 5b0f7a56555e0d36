// Package inbox implements the draft-approval workflow.
//
// Each conversation turn moves through a small state machine: an incoming
// message is logged (received), an AI draft is generated and parked for
// review (draft), and a human either approves it (role flips to assistant,
// status to sent) or rejects it (the row is deleted). Draft generation is
// failure-proof by policy: a failing model produces a visible error draft,
// never a failed request.
//
// The service depends on the Repository and Drafter interfaces defined in
// this package. Repository implementations live in repository/postgres/;
// the production Drafter lives in internal/ai.
package inbox
