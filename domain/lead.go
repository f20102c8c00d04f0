package domain

// Lead statuses, ordered roughly by pipeline stage.
const (
	LeadStatusFresh     = "fresh"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Lead priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// AgentUnassigned is the placeholder agent for leads nobody has picked up.
const AgentUnassigned = "unassigned"

// LeadRepository defines the persistence contract for the leads collection.
// Every method degrades to a benign value (nil, false, unchanged state) on
// storage failure instead of surfacing an error; callers treat nil as
// "no data yet".
type LeadRepository interface {
	// ListLeads returns the whole leads envelope, or nil when the
	// collection does not exist yet or its stored blob is unreadable.
	ListLeads() *Envelope[Lead]

	// SaveLeads persists the envelope wholesale and reports success.
	SaveLeads(env *Envelope[Lead]) bool

	// AddLead assigns the next id, stamps created_at, prepends the lead
	// and returns the updated envelope.
	AddLead(lead Lead) *Envelope[Lead]

	// GetLeadByID matches the raw (usually URL-sourced) id against stored
	// integer ids, so "1" finds the lead with id 1. Nil when not found.
	GetLeadByID(raw string) *Lead

	// UpdateLead merges the patch over the lead with the given id and
	// stamps updated_at. The second return is false when the id is
	// unknown, in which case the collection is untouched.
	UpdateLead(id int, patch LeadPatch) (*Lead, bool)

	// RemoveLead deletes the lead and recomputes the envelope meta.
	RemoveLead(id int) bool
}

// Lead is one sales lead as stored in the leads collection.
type Lead struct {
	ID            int     `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Budget        float64 `json:"budget"`
	TravelDates   string  `json:"travel_dates"`
	AssignedAgent string  `json:"assigned_agent"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"` // day precision, e.g. 2026-08-29
	UpdatedAt     string  `json:"updated_at,omitempty"` // RFC 3339
}

// LeadPatch carries partial updates; nil fields are left untouched.
type LeadPatch struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Budget        *float64
	TravelDates   *string
	AssignedAgent *string
	Status        *string
	Priority      *string
	Notes         *string
}
