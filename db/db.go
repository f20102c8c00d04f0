package db

import (
	"fmt"
	"io"
	"time"

	"github.com/roamline/roamline/store"
)

// Collection keys. One key per entity-type collection; draft keys live in
// their own namespace (see domain.FormType.DraftKey).
const (
	leadsKey       = "leads"
	employeesKey   = "employees"
	quotationsKey  = "quotations"
	itinerariesKey = "itineraries"
	auditKey       = "audit"
)

// Repository provides a centralized structure for collection operations,
// embedding the serialized store. It acts as a receiver for methods that
// implement the repository interfaces defined in the domain package.
type Repository struct {
	store store.Store      // store is the serialized key-value backend.
	now   func() time.Time // now is injectable for deterministic stamping in tests.
}

// NewRepo initializes a new Repository over the given store.
func NewRepo(s store.Store) *Repository {
	return &Repository{
		store: s,
		now:   time.Now,
	}
}

// Close releases the underlying store if it holds external resources.
func (repo *Repository) Close() error {
	closer, ok := repo.store.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}
