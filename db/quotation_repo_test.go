package db

import (
	"testing"

	"github.com/roamline/roamline/domain"
)

func TestQuotationRepo(t *testing.T) {
	t.Run("should add, fetch and update a quotation", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		env := repo.AddQuotation(domain.Quotation{
			CustomerName: "Jane Roe",
			Destination:  "Kyoto",
			Days:         7,
			Travelers:    2,
			TotalAmount:  3400,
			Status:       domain.QuotationStatusDraft,
		})
		if env.Data[0].ID != 1 {
			t.Fatalf("wanted id: 1\ngot: %d", env.Data[0].ID)
		}

		got := repo.GetQuotationByID("1")
		if got == nil || got.Destination != "Kyoto" {
			t.Fatalf("wanted Kyoto quotation\ngot: %+v", got)
		}

		status := domain.QuotationStatusSent
		updated, ok := repo.UpdateQuotation(1, domain.QuotationPatch{Status: &status})
		if !ok || updated.Status != domain.QuotationStatusSent {
			t.Fatalf("wanted sent status\ngot: %+v (ok: %v)", updated, ok)
		}
		if updated.TotalAmount != 3400 {
			t.Fatalf("wanted amount preserved\ngot: %v", updated.TotalAmount)
		}
	})

	t.Run("should keep meta consistent across remove", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.AddQuotation(domain.Quotation{CustomerName: "A", Days: 1, Travelers: 1})
		repo.AddQuotation(domain.Quotation{CustomerName: "B", Days: 1, Travelers: 1})
		repo.RemoveQuotation(2)

		env := repo.ListQuotations()
		if len(env.Data) != 1 || env.Meta.Total != 1 || env.Meta.To != 1 {
			t.Fatalf("wanted 1 quotation with total/to 1/1\ngot: %+v", env.Meta)
		}
	})
}

func TestItineraryRepo(t *testing.T) {
	t.Run("should add, fetch and update an itinerary", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		env := repo.AddItinerary(domain.Itinerary{
			Title:       "Kyoto in a week",
			Destination: "Kyoto",
			Days:        7,
			Persons:     2,
			Status:      domain.ItineraryStatusDraft,
		})
		if env.Data[0].ID != 1 || env.Data[0].CreatedAt != "2026-08-14" {
			t.Fatalf("wanted stamped itinerary\ngot: %+v", env.Data[0])
		}

		status := domain.ItineraryStatusFinal
		updated, ok := repo.UpdateItinerary(1, domain.ItineraryPatch{Status: &status})
		if !ok || updated.Status != domain.ItineraryStatusFinal {
			t.Fatalf("wanted final status\ngot: %+v (ok: %v)", updated, ok)
		}

		if got := repo.GetItineraryByID("1"); got == nil || got.Title != "Kyoto in a week" {
			t.Fatalf("wanted itinerary back\ngot: %+v", got)
		}
	})

	t.Run("should return nil for corrupt stored data", func(t *testing.T) {
		repo, s := setupTestRepo(t)

		s.Write("itineraries", "????")

		if env := repo.ListItineraries(); env != nil {
			t.Fatalf("wanted: nil\ngot: %+v", env)
		}
	})
}
