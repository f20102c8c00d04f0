package form

import "github.com/roamline/roamline/domain"

// QuotationForm is the shape the quotation wizard binds to. Day and
// traveler counts default to 1, status to "draft".
type QuotationForm struct {
	CustomerName string  `json:"customer_name"`
	Destination  string  `json:"destination"`
	TravelDate   string  `json:"travel_date"`
	Days         int     `json:"days"`
	Travelers    int     `json:"travelers"`
	TotalAmount  float64 `json:"total_amount"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
}

// ToQuotationForm converts a stored quotation to form shape; nil in, nil out.
func ToQuotationForm(quotation *domain.Quotation) *QuotationForm {
	if quotation == nil {
		return nil
	}
	return &QuotationForm{
		CustomerName: quotation.CustomerName,
		Destination:  quotation.Destination,
		TravelDate:   quotation.TravelDates,
		Days:         fallbackCount(quotation.Days),
		Travelers:    fallbackCount(quotation.Travelers),
		TotalAmount:  quotation.TotalAmount,
		Status:       fallback(quotation.Status, domain.QuotationStatusDraft),
		Notes:        quotation.Notes,
	}
}

// ToQuotationRecord converts form input to record shape, without an id.
func ToQuotationRecord(f QuotationForm) domain.Quotation {
	return domain.Quotation{
		CustomerName: f.CustomerName,
		Destination:  f.Destination,
		TravelDates:  f.TravelDate,
		Days:         fallbackCount(f.Days),
		Travelers:    fallbackCount(f.Travelers),
		TotalAmount:  f.TotalAmount,
		Status:       fallback(f.Status, domain.QuotationStatusDraft),
		Notes:        f.Notes,
	}
}
