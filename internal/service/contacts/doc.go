// Package contacts implements contact management: listing, manual entry,
// bulk import with upsert-by-email, and deletion.
//
// The service layer owns input validation and merge semantics for imports.
// It depends on the Repository interface defined in this package and never
// imports from api/. Repository implementations live in repository/postgres/.
package contacts
