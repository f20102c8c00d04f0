package db

import (
	"time"

	"github.com/roamline/roamline/domain"
)

var _ domain.LeadRepository = (*Repository)(nil)

func leadID(lead domain.Lead) int { return lead.ID }

func stampLead(lead domain.Lead, id int, created string) domain.Lead {
	lead.ID = id
	lead.CreatedAt = created
	return lead
}

// ListLeads implements the domain.LeadRepository interface.
// It returns nil when the collection does not exist yet or is unreadable.
func (repo *Repository) ListLeads() *domain.Envelope[domain.Lead] {
	return readEnvelope[domain.Lead](repo, leadsKey)
}

// SaveLeads implements the domain.LeadRepository interface.
func (repo *Repository) SaveLeads(env *domain.Envelope[domain.Lead]) bool {
	return writeEnvelope(repo, leadsKey, env)
}

// AddLead implements the domain.LeadRepository interface.
// The incoming lead's id is ignored; assignment belongs to the repository.
func (repo *Repository) AddLead(lead domain.Lead) *domain.Envelope[domain.Lead] {
	env := addRecord(repo, leadsKey, lead, leadID, stampLead)
	repo.recordAudit(domain.AuditActionAdd, leadsKey, env.Data[0].ID)
	return env
}

// GetLeadByID implements the domain.LeadRepository interface.
func (repo *Repository) GetLeadByID(raw string) *domain.Lead {
	return findByID(repo, leadsKey, raw, leadID)
}

// UpdateLead implements the domain.LeadRepository interface.
func (repo *Repository) UpdateLead(id int, patch domain.LeadPatch) (*domain.Lead, bool) {
	lead, ok := updateRecord(repo, leadsKey, id, leadID, func(lead domain.Lead) domain.Lead {
		if patch.CustomerName != nil {
			lead.CustomerName = *patch.CustomerName
		}
		if patch.CustomerEmail != nil {
			lead.CustomerEmail = *patch.CustomerEmail
		}
		if patch.CustomerPhone != nil {
			lead.CustomerPhone = *patch.CustomerPhone
		}
		if patch.Budget != nil {
			lead.Budget = *patch.Budget
		}
		if patch.TravelDates != nil {
			lead.TravelDates = *patch.TravelDates
		}
		if patch.AssignedAgent != nil {
			lead.AssignedAgent = *patch.AssignedAgent
		}
		if patch.Status != nil {
			lead.Status = *patch.Status
		}
		if patch.Priority != nil {
			lead.Priority = *patch.Priority
		}
		if patch.Notes != nil {
			lead.Notes = *patch.Notes
		}
		lead.UpdatedAt = repo.now().Format(time.RFC3339)
		return lead
	})
	if ok {
		repo.recordAudit(domain.AuditActionUpdate, leadsKey, id)
	}
	return lead, ok
}

// RemoveLead implements the domain.LeadRepository interface.
func (repo *Repository) RemoveLead(id int) bool {
	ok := removeRecord(repo, leadsKey, id, leadID)
	if ok {
		repo.recordAudit(domain.AuditActionRemove, leadsKey, id)
	}
	return ok
}
