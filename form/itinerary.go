package form

import "github.com/roamline/roamline/domain"

// ItineraryForm is the shape the itinerary builder binds to.
type ItineraryForm struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Persons     int    `json:"persons"`
	Summary     string `json:"summary,omitempty"`
	Status      string `json:"status"`
}

// ToItineraryForm converts a stored itinerary to form shape; nil in, nil out.
func ToItineraryForm(itinerary *domain.Itinerary) *ItineraryForm {
	if itinerary == nil {
		return nil
	}
	return &ItineraryForm{
		Title:       itinerary.Title,
		Destination: itinerary.Destination,
		Days:        fallbackCount(itinerary.Days),
		Persons:     fallbackCount(itinerary.Persons),
		Summary:     itinerary.Summary,
		Status:      fallback(itinerary.Status, domain.ItineraryStatusDraft),
	}
}

// ToItineraryRecord converts form input to record shape, without an id.
func ToItineraryRecord(f ItineraryForm) domain.Itinerary {
	return domain.Itinerary{
		Title:       f.Title,
		Destination: f.Destination,
		Days:        fallbackCount(f.Days),
		Persons:     fallbackCount(f.Persons),
		Summary:     f.Summary,
		Status:      fallback(f.Status, domain.ItineraryStatusDraft),
	}
}
