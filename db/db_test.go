package db

import (
	"os"
	"testing"
	"time"

	"github.com/roamline/roamline/domain"
	"github.com/roamline/roamline/store"
)

// testClock is the instant every stamped record sees in tests.
var testClock = time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC)

func setupTestRepo(t *testing.T) (*Repository, *store.MemoryStore) {
	t.Helper()

	s := store.NewMemoryStore()
	repo := NewRepo(s)
	repo.now = func() time.Time { return testClock }

	return repo, s
}

func setupSQLiteRepo(t *testing.T) (*Repository, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "test_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	s, err := store.NewSQLiteStore(tempFile.Name())
	if err != nil {
		t.Fatalf("store.NewSQLiteStore() failed: %v", err)
	}

	repo := NewRepo(s)
	repo.now = func() time.Time { return testClock }

	teardown := func() {
		repo.Close()
		os.Remove(tempFile.Name())
	}

	return repo, teardown
}

func testLead(name, email string, budget float64) domain.Lead {
	return domain.Lead{
		CustomerName:  name,
		CustomerEmail: email,
		Budget:        budget,
		AssignedAgent: domain.AgentUnassigned,
		Status:        domain.LeadStatusFresh,
		Priority:      domain.PriorityMedium,
	}
}

func testEmployee(name, email string) domain.Employee {
	return domain.Employee{
		Name:   name,
		Email:  email,
		Role:   domain.DefaultEmployeeRole,
		Status: domain.EmployeeStatusActive,
	}
}
