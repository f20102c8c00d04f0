package db

import (
	"time"

	"github.com/roamline/roamline/domain"
)

var _ domain.EmployeeRepository = (*Repository)(nil)

func employeeID(employee domain.Employee) int { return employee.ID }

func stampEmployee(employee domain.Employee, id int, created string) domain.Employee {
	employee.ID = id
	employee.CreatedAt = created
	return employee
}

// ListEmployees implements the domain.EmployeeRepository interface.
func (repo *Repository) ListEmployees() *domain.Envelope[domain.Employee] {
	return readEnvelope[domain.Employee](repo, employeesKey)
}

// SaveEmployees implements the domain.EmployeeRepository interface.
func (repo *Repository) SaveEmployees(env *domain.Envelope[domain.Employee]) bool {
	return writeEnvelope(repo, employeesKey, env)
}

// AddEmployee implements the domain.EmployeeRepository interface.
func (repo *Repository) AddEmployee(employee domain.Employee) *domain.Envelope[domain.Employee] {
	env := addRecord(repo, employeesKey, employee, employeeID, stampEmployee)
	repo.recordAudit(domain.AuditActionAdd, employeesKey, env.Data[0].ID)
	return env
}

// GetEmployeeByID implements the domain.EmployeeRepository interface.
func (repo *Repository) GetEmployeeByID(raw string) *domain.Employee {
	return findByID(repo, employeesKey, raw, employeeID)
}

// UpdateEmployee implements the domain.EmployeeRepository interface.
func (repo *Repository) UpdateEmployee(id int, patch domain.EmployeePatch) (*domain.Employee, bool) {
	employee, ok := updateRecord(repo, employeesKey, id, employeeID, func(employee domain.Employee) domain.Employee {
		if patch.Name != nil {
			employee.Name = *patch.Name
		}
		if patch.Email != nil {
			employee.Email = *patch.Email
		}
		if patch.Phone != nil {
			employee.Phone = *patch.Phone
		}
		if patch.Role != nil {
			employee.Role = *patch.Role
		}
		if patch.Department != nil {
			employee.Department = *patch.Department
		}
		if patch.Status != nil {
			employee.Status = *patch.Status
		}
		employee.UpdatedAt = repo.now().Format(time.RFC3339)
		return employee
	})
	if ok {
		repo.recordAudit(domain.AuditActionUpdate, employeesKey, id)
	}
	return employee, ok
}

// RemoveEmployee implements the domain.EmployeeRepository interface.
func (repo *Repository) RemoveEmployee(id int) bool {
	ok := removeRecord(repo, employeesKey, id, employeeID)
	if ok {
		repo.recordAudit(domain.AuditActionRemove, employeesKey, id)
	}
	return ok
}
