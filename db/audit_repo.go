package db

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/roamline/roamline/domain"
)

var _ domain.AuditRepository = (*Repository)(nil)

// AppendAudit implements the domain.AuditRepository interface.
// The trail is a single JSON array under a reserved key, appended in place.
func (repo *Repository) AppendAudit(entry *domain.AuditEntry) error {
	entries := repo.AuditTrail()
	entries = append(entries, entry)

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("serializing audit trail: %w", err)
	}
	if err := repo.store.Write(auditKey, string(raw)); err != nil {
		return fmt.Errorf("writing audit trail: %w", err)
	}

	return nil
}

// AuditTrail implements the domain.AuditRepository interface.
// It follows the same corrupt-blob policy as the collections: log, remove
// the key, return nil.
func (repo *Repository) AuditTrail() []*domain.AuditEntry {
	raw, ok, err := repo.store.Read(auditKey)
	if err != nil {
		log.Printf("reading audit trail: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []*domain.AuditEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("corrupt audit trail, discarding: %v", err)
		if err := repo.store.Remove(auditKey); err != nil {
			log.Printf("removing corrupt audit trail: %v", err)
		}
		return nil
	}

	return entries
}

// AuditWithNote is an option to attach free-form context to an audit entry.
func AuditWithNote(note string) func(entry *domain.AuditEntry) error {
	return func(entry *domain.AuditEntry) error {
		entry.Note = note
		return nil
	}
}

// recordAudit builds and appends an entry for a completed mutation.
// Auditing is best-effort: failures are logged and never fail the mutation
// they describe.
func (repo *Repository) recordAudit(action, collection string, recordID int, options ...func(entry *domain.AuditEntry) error) {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("creating audit entry id: %v", err)
		return
	}

	entry := &domain.AuditEntry{
		ID:         id,
		Timestamp:  repo.now(),
		Action:     action,
		Collection: collection,
		RecordID:   recordID,
	}
	for _, option := range options {
		if err := option(entry); err != nil {
			log.Printf("applying audit option: %v", err)
			return
		}
	}

	if err := repo.AppendAudit(entry); err != nil {
		log.Printf("appending audit entry: %v", err)
	}
}
