package db

import (
	"encoding/json"
	"log"

	"github.com/roamline/roamline/domain"
)

var _ domain.DraftRepository = (*Repository)(nil)

// SaveDraft implements the domain.DraftRepository interface.
// The draft is overwritten unconditionally; callers invoke this on every
// form-field change and the last write wins.
func (repo *Repository) SaveDraft(formType domain.FormType, data any) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("serializing %s draft: %v", formType, err)
		return false
	}
	if err := repo.store.Write(formType.DraftKey(), string(raw)); err != nil {
		log.Printf("saving %s draft: %v", formType, err)
		return false
	}
	return true
}

// LoadDraft implements the domain.DraftRepository interface.
// A malformed draft is treated as absent and its key is removed eagerly so
// the failure is not retried on every mount.
func (repo *Repository) LoadDraft(formType domain.FormType, dest any) bool {
	raw, ok, err := repo.store.Read(formType.DraftKey())
	if err != nil {
		log.Printf("loading %s draft: %v", formType, err)
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("corrupt %s draft, discarding: %v", formType, err)
		if err := repo.store.Remove(formType.DraftKey()); err != nil {
			log.Printf("removing corrupt %s draft: %v", formType, err)
		}
		return false
	}

	return true
}

// ClearDraft implements the domain.DraftRepository interface.
// Called after a successful submit, or directly by a discard action.
func (repo *Repository) ClearDraft(formType domain.FormType) bool {
	if err := repo.store.Remove(formType.DraftKey()); err != nil {
		log.Printf("clearing %s draft: %v", formType, err)
		return false
	}
	return true
}
