package form

import "github.com/roamline/roamline/domain"

// LeadForm is the shape the lead create/edit screen binds to.
//
// Field mapping and defaults:
//
//	name             <-> customer_name    ""
//	email            <-> customer_email   ""
//	phone            <-> customer_phone   ""
//	estimated_value  <-> budget           0
//	travel_date      <-> travel_dates     ""
//	agent_assignment <-> assigned_agent   "unassigned"
//	status           <-> status           "fresh"
//	priority         <-> priority         "medium"
type LeadForm struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	EstimatedValue  float64 `json:"estimated_value"`
	TravelDate      string  `json:"travel_date"`
	AgentAssignment string  `json:"agent_assignment"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	Notes           string  `json:"notes,omitempty"`
}

// ToLeadForm converts a stored lead to form shape. A nil lead yields nil so
// mounting code can distinguish "no data yet" from "empty data".
func ToLeadForm(lead *domain.Lead) *LeadForm {
	if lead == nil {
		return nil
	}
	return &LeadForm{
		Name:            lead.CustomerName,
		Email:           lead.CustomerEmail,
		Phone:           lead.CustomerPhone,
		EstimatedValue:  lead.Budget,
		TravelDate:      lead.TravelDates,
		AgentAssignment: fallback(lead.AssignedAgent, domain.AgentUnassigned),
		Status:          fallback(lead.Status, domain.LeadStatusFresh),
		Priority:        fallback(lead.Priority, domain.PriorityMedium),
		Notes:           lead.Notes,
	}
}

// ToLeadRecord converts form input to record shape. The returned lead
// carries no id; the repository assigns one on add.
func ToLeadRecord(f LeadForm) domain.Lead {
	return domain.Lead{
		CustomerName:  f.Name,
		CustomerEmail: f.Email,
		CustomerPhone: f.Phone,
		Budget:        f.EstimatedValue,
		TravelDates:   f.TravelDate,
		AssignedAgent: fallback(f.AgentAssignment, domain.AgentUnassigned),
		Status:        fallback(f.Status, domain.LeadStatusFresh),
		Priority:      fallback(f.Priority, domain.PriorityMedium),
		Notes:         f.Notes,
	}
}
