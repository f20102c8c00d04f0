package store

import "testing"

func TestMemoryStore(t *testing.T) {
	t.Run("should report absence for an unknown key", func(t *testing.T) {
		s := NewMemoryStore()

		value, ok, err := s.Read("leads")
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if ok {
			t.Fatalf("wanted absent key\ngot value %q", value)
		}
	})

	t.Run("should read back what was written", func(t *testing.T) {
		s := NewMemoryStore()

		if err := s.Write("leads", `{"data":[]}`); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		got, ok, err := s.Read("leads")
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !ok {
			t.Fatalf("wanted key to exist")
		}
		if got != `{"data":[]}` {
			t.Fatalf("wanted: %q\ngot: %q", `{"data":[]}`, got)
		}
	})

	t.Run("should overwrite on repeated writes", func(t *testing.T) {
		s := NewMemoryStore()

		s.Write("draft:lead_form", "first")
		s.Write("draft:lead_form", "second")

		got, _, _ := s.Read("draft:lead_form")
		if got != "second" {
			t.Fatalf("wanted: %q\ngot: %q", "second", got)
		}
	})

	t.Run("should remove keys and tolerate removing twice", func(t *testing.T) {
		s := NewMemoryStore()

		s.Write("leads", "x")
		if err := s.Remove("leads"); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if err := s.Remove("leads"); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		_, ok, _ := s.Read("leads")
		if ok {
			t.Fatalf("wanted key to be gone")
		}
	})
}
