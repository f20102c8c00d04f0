package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions.
const (
	AuditActionAdd    = "add"
	AuditActionUpdate = "update"
	AuditActionRemove = "remove"
	AuditActionSeed   = "seed"
)

// AuditRepository defines the interface for the mutation audit trail.
type AuditRepository interface {
	// AppendAudit saves a new audit entry.
	AppendAudit(entry *AuditEntry) error
	// AuditTrail retrieves all audit entries in append order, or nil when
	// none have been recorded.
	AuditTrail() []*AuditEntry
}

// AuditEntry records a single mutation against a collection.
type AuditEntry struct {
	ID         uuid.UUID `json:"id"`                  // Unique identifier for the entry.
	Timestamp  time.Time `json:"timestamp"`           // When the mutation happened.
	Action     string    `json:"action"`              // One of the AuditAction constants.
	Collection string    `json:"collection"`          // Collection key the mutation touched.
	RecordID   int       `json:"record_id,omitempty"` // Id of the affected record.
	Note       string    `json:"note,omitempty"`      // Optional free-form context.
}
