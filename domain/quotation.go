package domain

// Quotation statuses.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// QuotationRepository defines the persistence contract for the quotations
// collection. Same degradation rules as LeadRepository.
type QuotationRepository interface {
	ListQuotations() *Envelope[Quotation]
	SaveQuotations(env *Envelope[Quotation]) bool
	AddQuotation(quotation Quotation) *Envelope[Quotation]
	GetQuotationByID(raw string) *Quotation
	UpdateQuotation(id int, patch QuotationPatch) (*Quotation, bool)
	RemoveQuotation(id int) bool
}

// Quotation is one priced trip proposal.
type Quotation struct {
	ID           int     `json:"id"`
	CustomerName string  `json:"customer_name"`
	Destination  string  `json:"destination"`
	TravelDates  string  `json:"travel_dates"`
	Days         int     `json:"days"`
	Travelers    int     `json:"travelers"`
	TotalAmount  float64 `json:"total_amount"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// QuotationPatch carries partial updates; nil fields are left untouched.
type QuotationPatch struct {
	CustomerName *string
	Destination  *string
	TravelDates  *string
	Days         *int
	Travelers    *int
	TotalAmount  *float64
	Status       *string
	Notes        *string
}
