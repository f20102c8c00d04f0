package db

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/roamline/roamline/domain"
)

// Envelope read-modify-write helpers shared by the per-entity repositories.
// Each helper re-reads the full envelope before mutating, so operations in
// one execution context always observe each other's effects.

// readEnvelope deserializes the envelope stored under key. On a parse
// failure the offending key is removed so it will not fail again, and nil is
// returned; callers treat nil as "no data yet", not as an error state.
func readEnvelope[T any](repo *Repository, key string) *domain.Envelope[T] {
	raw, ok, err := repo.store.Read(key)
	if err != nil {
		log.Printf("reading %s collection: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}

	var env domain.Envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Printf("corrupt %s collection, discarding: %v", key, err)
		if err := repo.store.Remove(key); err != nil {
			log.Printf("removing corrupt %s collection: %v", key, err)
		}
		return nil
	}

	return &env
}

// writeEnvelope serializes the whole envelope under key and reports success.
func writeEnvelope[T any](repo *Repository, key string, env *domain.Envelope[T]) bool {
	raw, err := json.Marshal(env)
	if err != nil {
		log.Printf("serializing %s collection: %v", key, err)
		return false
	}
	if err := repo.store.Write(key, string(raw)); err != nil {
		log.Printf("writing %s collection: %v", key, err)
		return false
	}
	return true
}

// refreshMeta reconciles the derived meta fields with the data array.
// Total and To track len(data); everything else is left untouched because
// stored collections are single-page.
func refreshMeta[T any](env *domain.Envelope[T]) {
	env.Meta.Total = len(env.Data)
	env.Meta.To = len(env.Data)
}

// addRecord stamps the record with the next id and a day-precision
// created_at, prepends it (newest first), refreshes the meta and persists.
// The envelope is created lazily when the collection does not exist yet.
//
// The id strategy is max(existing ids)+1: monotonic within one execution
// context, not collision-proof against out-of-band edits of the stored blob.
func addRecord[T any](repo *Repository, key string, record T, id func(T) int, stamp func(T, int, string) T) *domain.Envelope[T] {
	env := readEnvelope[T](repo, key)
	if env == nil {
		env = domain.NewEnvelope[T]()
	}

	nextID := 0
	for _, existing := range env.Data {
		if id(existing) > nextID {
			nextID = id(existing)
		}
	}
	nextID++

	stamped := stamp(record, nextID, repo.now().Format(time.DateOnly))
	env.Data = append([]T{stamped}, env.Data...)
	refreshMeta(env)

	// Persist failure is logged inside writeEnvelope; the updated envelope
	// is still returned so the caller sees the record it just created.
	writeEnvelope(repo, key, env)
	return env
}

// findByID scans the collection for a record whose integer id matches the
// raw identifier. Both sides are normalized to strings so a path parameter
// like "7" finds the record stored with id 7.
func findByID[T any](repo *Repository, key, raw string, id func(T) int) *T {
	env := readEnvelope[T](repo, key)
	if env == nil {
		return nil
	}

	want := strings.TrimSpace(raw)
	for i := range env.Data {
		if strconv.Itoa(id(env.Data[i])) == want {
			return &env.Data[i]
		}
	}

	return nil
}

// updateRecord locates a record by strict integer id, replaces it with
// apply's result and persists. When the id is unknown the collection is left
// untouched and false is returned.
func updateRecord[T any](repo *Repository, key string, id int, getID func(T) int, apply func(T) T) (*T, bool) {
	env := readEnvelope[T](repo, key)
	if env == nil {
		return nil, false
	}

	for i := range env.Data {
		if getID(env.Data[i]) != id {
			continue
		}
		env.Data[i] = apply(env.Data[i])
		if !writeEnvelope(repo, key, env) {
			return nil, false
		}
		return &env.Data[i], true
	}

	return nil, false
}

// removeRecord filters the record out of the collection, refreshes the meta
// and persists. False when the id was not present or the write failed.
func removeRecord[T any](repo *Repository, key string, id int, getID func(T) int) bool {
	env := readEnvelope[T](repo, key)
	if env == nil {
		return false
	}

	kept := make([]T, 0, len(env.Data))
	for _, record := range env.Data {
		if getID(record) != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(env.Data) {
		return false
	}

	env.Data = kept
	refreshMeta(env)
	return writeEnvelope(repo, key, env)
}
