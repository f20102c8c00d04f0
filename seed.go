package roamline

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/roamline/roamline/domain"
)

// seedLead is a lead as written in a fixture file.
type seedLead struct {
	CustomerName  string  `yaml:"customer_name"`
	CustomerEmail string  `yaml:"customer_email"`
	CustomerPhone string  `yaml:"customer_phone"`
	Budget        float64 `yaml:"budget"`
	TravelDates   string  `yaml:"travel_dates"`
	AssignedAgent string  `yaml:"assigned_agent"`
	Status        string  `yaml:"status"`
	Priority      string  `yaml:"priority"`
	Notes         string  `yaml:"notes"`
}

func (s seedLead) toDomain() domain.Lead {
	return domain.Lead{
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		CustomerPhone: s.CustomerPhone,
		Budget:        s.Budget,
		TravelDates:   s.TravelDates,
		AssignedAgent: s.AssignedAgent,
		Status:        s.Status,
		Priority:      s.Priority,
		Notes:         s.Notes,
	}
}

// seedEmployee is an employee as written in a fixture file.
type seedEmployee struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Role       string `yaml:"role"`
	Department string `yaml:"department"`
	Status     string `yaml:"status"`
}

func (s seedEmployee) toDomain() domain.Employee {
	return domain.Employee{
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Role:       s.Role,
		Department: s.Department,
		Status:     s.Status,
	}
}

// seedQuotation is a quotation as written in a fixture file.
type seedQuotation struct {
	CustomerName string  `yaml:"customer_name"`
	Destination  string  `yaml:"destination"`
	TravelDates  string  `yaml:"travel_dates"`
	Days         int     `yaml:"days"`
	Travelers    int     `yaml:"travelers"`
	TotalAmount  float64 `yaml:"total_amount"`
	Status       string  `yaml:"status"`
}

func (s seedQuotation) toDomain() domain.Quotation {
	return domain.Quotation{
		CustomerName: s.CustomerName,
		Destination:  s.Destination,
		TravelDates:  s.TravelDates,
		Days:         s.Days,
		Travelers:    s.Travelers,
		TotalAmount:  s.TotalAmount,
		Status:       s.Status,
	}
}

// seedItinerary is an itinerary as written in a fixture file.
type seedItinerary struct {
	Title       string `yaml:"title"`
	Destination string `yaml:"destination"`
	Days        int    `yaml:"days"`
	Persons     int    `yaml:"persons"`
	Summary     string `yaml:"summary"`
	Status      string `yaml:"status"`
}

func (s seedItinerary) toDomain() domain.Itinerary {
	return domain.Itinerary{
		Title:       s.Title,
		Destination: s.Destination,
		Days:        s.Days,
		Persons:     s.Persons,
		Summary:     s.Summary,
		Status:      s.Status,
	}
}

type seedFile struct {
	Leads       []seedLead      `yaml:"leads"`
	Employees   []seedEmployee  `yaml:"employees"`
	Quotations  []seedQuotation `yaml:"quotations"`
	Itineraries []seedItinerary `yaml:"itineraries"`
}

// Seed loads demo fixtures from a YAML file into the store. Only collections
// that do not exist yet are filled, so seeding never clobbers real records.
// It returns the number of records created.
func (back *Backoffice) Seed(fixturePath string) (int, error) {
	raw, err := os.ReadFile(fixturePath)
	if err != nil {
		return 0, fmt.Errorf("reading fixture file %s: %w", fixturePath, err)
	}

	var fixtures seedFile
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return 0, fmt.Errorf("parsing fixture file %s: %w", fixturePath, err)
	}

	created := 0

	if back.Repo.ListLeads() == nil && len(fixtures.Leads) > 0 {
		for _, lead := range fixtures.Leads {
			back.Repo.AddLead(lead.toDomain())
			created++
		}
		back.noteSeed("leads", fixturePath)
	}
	if back.Repo.ListEmployees() == nil && len(fixtures.Employees) > 0 {
		for _, employee := range fixtures.Employees {
			back.Repo.AddEmployee(employee.toDomain())
			created++
		}
		back.noteSeed("employees", fixturePath)
	}
	if back.Repo.ListQuotations() == nil && len(fixtures.Quotations) > 0 {
		for _, quotation := range fixtures.Quotations {
			back.Repo.AddQuotation(quotation.toDomain())
			created++
		}
		back.noteSeed("quotations", fixturePath)
	}
	if back.Repo.ListItineraries() == nil && len(fixtures.Itineraries) > 0 {
		for _, itinerary := range fixtures.Itineraries {
			back.Repo.AddItinerary(itinerary.toDomain())
			created++
		}
		back.noteSeed("itineraries", fixturePath)
	}

	return created, nil
}

// noteSeed marks a seeded collection in the audit trail, best-effort.
func (back *Backoffice) noteSeed(collection, fixturePath string) {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("creating seed audit id: %v", err)
		return
	}
	entry := &domain.AuditEntry{
		ID:         id,
		Timestamp:  time.Now(),
		Action:     domain.AuditActionSeed,
		Collection: collection,
		Note:       fixturePath,
	}
	if err := back.Repo.AppendAudit(entry); err != nil {
		log.Printf("recording seed of %s: %v", collection, err)
	}
}
