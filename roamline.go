// Package roamline assembles the back-office record store of the Roamline
// travel CRM: a serialized key-value store, typed collection repositories
// for leads, employees, quotations and itineraries, bidirectional
// record/form transforms, and a draft autosave channel for unsubmitted
// form input.
//
// The Backoffice facade wires the pieces together; calling code works
// against the repository interfaces in the domain package and never touches
// the serialized store directly.
package roamline

import (
	"fmt"
	"io"
	"log"

	"github.com/roamline/roamline/db"
	"github.com/roamline/roamline/store"
)

// Backoffice is the assembled application: configuration, the serialized
// store, and the repository layer on top of it. Construct it once per
// session with New and the options in options.go.
type Backoffice struct {
	ConfigDir string
	Config    Config
	Store     store.Store
	Repo      *db.Repository
}

// New builds a Backoffice by applying the given options in order. When no
// store option was supplied, an in-memory store is used so the instance is
// still usable for ephemeral sessions and tests.
func New(options ...func(*Backoffice) error) (*Backoffice, error) {
	back := &Backoffice{}
	if err := back.WithOptions(options...); err != nil {
		return nil, err
	}

	if back.Store == nil {
		log.Println("[*] no store configured, falling back to in-memory")
		back.Store = store.NewMemoryStore()
	}
	if back.Repo == nil {
		back.Repo = db.NewRepo(back.Store)
	}

	return back, nil
}

// WithOptions applies a series of configuration functions to the instance.
// Each option function can modify the configuration and return an error if
// it fails.
func (back *Backoffice) WithOptions(options ...func(*Backoffice) error) error {
	for _, option := range options {
		err := option(back)
		if err != nil {
			return fmt.Errorf("applying option on roamline : %w", err)
		}
	}
	return nil
}

// Close releases the repository and whatever resources the store holds.
func (back *Backoffice) Close() error {
	if back.Repo != nil {
		return back.Repo.Close()
	}
	if closer, ok := back.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
