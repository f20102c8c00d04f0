package domain

// Itinerary statuses.
const (
	ItineraryStatusDraft = "draft"
	ItineraryStatusFinal = "final"
)

// ItineraryRepository defines the persistence contract for the itineraries
// collection. Same degradation rules as LeadRepository.
type ItineraryRepository interface {
	ListItineraries() *Envelope[Itinerary]
	SaveItineraries(env *Envelope[Itinerary]) bool
	AddItinerary(itinerary Itinerary) *Envelope[Itinerary]
	GetItineraryByID(raw string) *Itinerary
	UpdateItinerary(id int, patch ItineraryPatch) (*Itinerary, bool)
	RemoveItinerary(id int) bool
}

// Itinerary is one day-by-day trip plan.
type Itinerary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Persons     int    `json:"persons"`
	Summary     string `json:"summary,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ItineraryPatch carries partial updates; nil fields are left untouched.
type ItineraryPatch struct {
	Title       *string
	Destination *string
	Days        *int
	Persons     *int
	Summary     *string
	Status      *string
}
