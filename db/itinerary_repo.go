package db

import (
	"time"

	"github.com/roamline/roamline/domain"
)

var _ domain.ItineraryRepository = (*Repository)(nil)

func itineraryID(itinerary domain.Itinerary) int { return itinerary.ID }

func stampItinerary(itinerary domain.Itinerary, id int, created string) domain.Itinerary {
	itinerary.ID = id
	itinerary.CreatedAt = created
	return itinerary
}

// ListItineraries implements the domain.ItineraryRepository interface.
func (repo *Repository) ListItineraries() *domain.Envelope[domain.Itinerary] {
	return readEnvelope[domain.Itinerary](repo, itinerariesKey)
}

// SaveItineraries implements the domain.ItineraryRepository interface.
func (repo *Repository) SaveItineraries(env *domain.Envelope[domain.Itinerary]) bool {
	return writeEnvelope(repo, itinerariesKey, env)
}

// AddItinerary implements the domain.ItineraryRepository interface.
func (repo *Repository) AddItinerary(itinerary domain.Itinerary) *domain.Envelope[domain.Itinerary] {
	env := addRecord(repo, itinerariesKey, itinerary, itineraryID, stampItinerary)
	repo.recordAudit(domain.AuditActionAdd, itinerariesKey, env.Data[0].ID)
	return env
}

// GetItineraryByID implements the domain.ItineraryRepository interface.
func (repo *Repository) GetItineraryByID(raw string) *domain.Itinerary {
	return findByID(repo, itinerariesKey, raw, itineraryID)
}

// UpdateItinerary implements the domain.ItineraryRepository interface.
func (repo *Repository) UpdateItinerary(id int, patch domain.ItineraryPatch) (*domain.Itinerary, bool) {
	itinerary, ok := updateRecord(repo, itinerariesKey, id, itineraryID, func(itinerary domain.Itinerary) domain.Itinerary {
		if patch.Title != nil {
			itinerary.Title = *patch.Title
		}
		if patch.Destination != nil {
			itinerary.Destination = *patch.Destination
		}
		if patch.Days != nil {
			itinerary.Days = *patch.Days
		}
		if patch.Persons != nil {
			itinerary.Persons = *patch.Persons
		}
		if patch.Summary != nil {
			itinerary.Summary = *patch.Summary
		}
		if patch.Status != nil {
			itinerary.Status = *patch.Status
		}
		itinerary.UpdatedAt = repo.now().Format(time.RFC3339)
		return itinerary
	})
	if ok {
		repo.recordAudit(domain.AuditActionUpdate, itinerariesKey, id)
	}
	return itinerary, ok
}

// RemoveItinerary implements the domain.ItineraryRepository interface.
func (repo *Repository) RemoveItinerary(id int) bool {
	ok := removeRecord(repo, itinerariesKey, id, itineraryID)
	if ok {
		repo.recordAudit(domain.AuditActionRemove, itinerariesKey, id)
	}
	return ok
}
