package db

import (
	"testing"

	"github.com/roamline/roamline/domain"
)

func TestAuditRepo(t *testing.T) {
	t.Run("should record add, update and remove", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.AddLead(testLead("Jane Roe", "jane@x.com", 1200))
		status := domain.LeadStatusContacted
		repo.UpdateLead(1, domain.LeadPatch{Status: &status})
		repo.RemoveLead(1)

		trail := repo.AuditTrail()
		if len(trail) != 3 {
			t.Fatalf("wanted: 3 entries\ngot: %d", len(trail))
		}

		wantActions := []string{domain.AuditActionAdd, domain.AuditActionUpdate, domain.AuditActionRemove}
		for i, want := range wantActions {
			if trail[i].Action != want {
				t.Fatalf("wanted action %q at index %d\ngot: %q", want, i, trail[i].Action)
			}
			if trail[i].Collection != "leads" || trail[i].RecordID != 1 {
				t.Fatalf("wanted leads/1\ngot: %s/%d", trail[i].Collection, trail[i].RecordID)
			}
			if trail[i].ID.String() == "00000000-0000-0000-0000-000000000000" {
				t.Fatalf("wanted a non-zero entry id")
			}
		}
	})

	t.Run("should not record a failed update", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.AddLead(testLead("Jane Roe", "jane@x.com", 1200))
		status := domain.LeadStatusLost
		repo.UpdateLead(42, domain.LeadPatch{Status: &status})

		trail := repo.AuditTrail()
		if len(trail) != 1 {
			t.Fatalf("wanted only the add entry\ngot: %d entries", len(trail))
		}
	})

	t.Run("should attach notes via option", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.recordAudit(domain.AuditActionSeed, "leads", 0, AuditWithNote("fixtures"))

		trail := repo.AuditTrail()
		if len(trail) != 1 || trail[0].Note != "fixtures" {
			t.Fatalf("wanted a seed entry with note\ngot: %+v", trail)
		}
	})

	t.Run("should discard a corrupt trail", func(t *testing.T) {
		repo, s := setupTestRepo(t)

		s.Write("audit", "not an array")

		if trail := repo.AuditTrail(); trail != nil {
			t.Fatalf("wanted: nil\ngot: %+v", trail)
		}
		if _, ok, _ := s.Read("audit"); ok {
			t.Fatalf("wanted corrupt audit key to be removed")
		}
	})
}
