// Package db provides the repository layer of the Roamline back office.
// It implements the repository interfaces from the domain package on top of
// the serialized key-value store, managing one JSON envelope per collection
// (leads, employees, quotations, itineraries) plus the draft and audit key
// namespaces.
//
// This package is responsible for:
// - Assigning record ids (max existing id + 1) and stamping created_at/updated_at.
// - Keeping envelope pagination metadata consistent with the data array.
// - Whole-envelope read-modify-write cycles against the store (`collection.go`).
// - The draft autosave/recover/clear lifecycle (`draft_repo.go`).
// - The mutation audit trail (`audit_repo.go`).
//
// Failure policy: this is a best-effort cache, not a transactional store.
// Every storage or parse failure is caught, logged, and converted into a
// benign return value (nil, false, unchanged state). Nothing in this package
// lets a storage failure cross its public boundary as an error.
package db
