package db

import (
	"time"

	"github.com/roamline/roamline/domain"
)

var _ domain.QuotationRepository = (*Repository)(nil)

func quotationID(quotation domain.Quotation) int { return quotation.ID }

func stampQuotation(quotation domain.Quotation, id int, created string) domain.Quotation {
	quotation.ID = id
	quotation.CreatedAt = created
	return quotation
}

// ListQuotations implements the domain.QuotationRepository interface.
func (repo *Repository) ListQuotations() *domain.Envelope[domain.Quotation] {
	return readEnvelope[domain.Quotation](repo, quotationsKey)
}

// SaveQuotations implements the domain.QuotationRepository interface.
func (repo *Repository) SaveQuotations(env *domain.Envelope[domain.Quotation]) bool {
	return writeEnvelope(repo, quotationsKey, env)
}

// AddQuotation implements the domain.QuotationRepository interface.
func (repo *Repository) AddQuotation(quotation domain.Quotation) *domain.Envelope[domain.Quotation] {
	env := addRecord(repo, quotationsKey, quotation, quotationID, stampQuotation)
	repo.recordAudit(domain.AuditActionAdd, quotationsKey, env.Data[0].ID)
	return env
}

// GetQuotationByID implements the domain.QuotationRepository interface.
func (repo *Repository) GetQuotationByID(raw string) *domain.Quotation {
	return findByID(repo, quotationsKey, raw, quotationID)
}

// UpdateQuotation implements the domain.QuotationRepository interface.
func (repo *Repository) UpdateQuotation(id int, patch domain.QuotationPatch) (*domain.Quotation, bool) {
	quotation, ok := updateRecord(repo, quotationsKey, id, quotationID, func(quotation domain.Quotation) domain.Quotation {
		if patch.CustomerName != nil {
			quotation.CustomerName = *patch.CustomerName
		}
		if patch.Destination != nil {
			quotation.Destination = *patch.Destination
		}
		if patch.TravelDates != nil {
			quotation.TravelDates = *patch.TravelDates
		}
		if patch.Days != nil {
			quotation.Days = *patch.Days
		}
		if patch.Travelers != nil {
			quotation.Travelers = *patch.Travelers
		}
		if patch.TotalAmount != nil {
			quotation.TotalAmount = *patch.TotalAmount
		}
		if patch.Status != nil {
			quotation.Status = *patch.Status
		}
		if patch.Notes != nil {
			quotation.Notes = *patch.Notes
		}
		quotation.UpdatedAt = repo.now().Format(time.RFC3339)
		return quotation
	})
	if ok {
		repo.recordAudit(domain.AuditActionUpdate, quotationsKey, id)
	}
	return quotation, ok
}

// RemoveQuotation implements the domain.QuotationRepository interface.
func (repo *Repository) RemoveQuotation(id int) bool {
	ok := removeRecord(repo, quotationsKey, id, quotationID)
	if ok {
		repo.recordAudit(domain.AuditActionRemove, quotationsKey, id)
	}
	return ok
}
