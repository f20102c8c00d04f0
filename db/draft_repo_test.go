package db

import (
	"reflect"
	"testing"

	"github.com/roamline/roamline/domain"
)

type testDraft struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	EstimatedValue float64 `json:"estimated_value"`
}

func TestDraftRepo(t *testing.T) {
	t.Run("should resume a saved draft", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		want := testDraft{Name: "Jane Roe", Email: "jane@x.com", EstimatedValue: 1200}
		if !repo.SaveDraft(domain.FormLead, want) {
			t.Fatalf("wanted save to succeed")
		}

		var got testDraft
		if !repo.LoadDraft(domain.FormLead, &got) {
			t.Fatalf("wanted a draft to load")
		}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
		}
	})

	t.Run("should overwrite on every save", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.SaveDraft(domain.FormLead, testDraft{Name: "First"})
		repo.SaveDraft(domain.FormLead, testDraft{Name: "Second"})

		var got testDraft
		repo.LoadDraft(domain.FormLead, &got)
		if got.Name != "Second" {
			t.Fatalf("wanted: %q\ngot: %q", "Second", got.Name)
		}
	})

	t.Run("should report no draft after clearing", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.SaveDraft(domain.FormLead, testDraft{Name: "Jane Roe"})
		if !repo.ClearDraft(domain.FormLead) {
			t.Fatalf("wanted clear to succeed")
		}

		var got testDraft
		if repo.LoadDraft(domain.FormLead, &got) {
			t.Fatalf("wanted no draft after clear")
		}
	})

	t.Run("should keep form types in separate slots", func(t *testing.T) {
		repo, _ := setupTestRepo(t)

		repo.SaveDraft(domain.FormLead, testDraft{Name: "Lead draft"})
		repo.SaveDraft(domain.FormQuotation, testDraft{Name: "Quotation draft"})
		repo.ClearDraft(domain.FormLead)

		var got testDraft
		if !repo.LoadDraft(domain.FormQuotation, &got) {
			t.Fatalf("wanted quotation draft to survive")
		}
		if got.Name != "Quotation draft" {
			t.Fatalf("wanted: %q\ngot: %q", "Quotation draft", got.Name)
		}
	})

	t.Run("should discard a corrupt draft and remove its key", func(t *testing.T) {
		repo, s := setupTestRepo(t)

		s.Write(domain.FormLead.DraftKey(), "{broken")

		var got testDraft
		if repo.LoadDraft(domain.FormLead, &got) {
			t.Fatalf("wanted corrupt draft to count as absent")
		}
		if _, ok, _ := s.Read(domain.FormLead.DraftKey()); ok {
			t.Fatalf("wanted corrupt draft key to be removed")
		}
	})

	t.Run("should not collide with collection keys", func(t *testing.T) {
		repo, s := setupTestRepo(t)

		repo.AddLead(testLead("Jane Roe", "jane@x.com", 1200))
		repo.SaveDraft(domain.FormLead, testDraft{Name: "in progress"})

		if _, ok, _ := s.Read("leads"); !ok {
			t.Fatalf("wanted leads collection untouched by drafts")
		}
		if env := repo.ListLeads(); env == nil || len(env.Data) != 1 {
			t.Fatalf("wanted 1 lead regardless of draft state\ngot: %+v", env)
		}
	})
}
