// Package store provides the serialized key-value layer underneath the
// repositories: raw persistence of JSON-shaped string values under named
// keys. Three backends implement the same contract — SQLite (default,
// durable), Redis (optional shared backend), and an in-memory map used by
// tests and ephemeral sessions.
//
// The store knows nothing about envelopes, records, or drafts; it moves
// opaque strings. All layering above it (id assignment, meta bookkeeping,
// draft namespacing) lives in the db package.
package store
