package form

import "github.com/roamline/roamline/domain"

// EmployeeForm is the shape the employee create/edit screen binds to.
// Role defaults to "agent", status to "active".
type EmployeeForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// ToEmployeeForm converts a stored employee to form shape; nil in, nil out.
func ToEmployeeForm(employee *domain.Employee) *EmployeeForm {
	if employee == nil {
		return nil
	}
	return &EmployeeForm{
		Name:       employee.Name,
		Email:      employee.Email,
		Phone:      employee.Phone,
		Role:       fallback(employee.Role, domain.DefaultEmployeeRole),
		Department: employee.Department,
		Status:     fallback(employee.Status, domain.EmployeeStatusActive),
	}
}

// ToEmployeeRecord converts form input to record shape, without an id.
func ToEmployeeRecord(f EmployeeForm) domain.Employee {
	return domain.Employee{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Role:       fallback(f.Role, domain.DefaultEmployeeRole),
		Department: f.Department,
		Status:     fallback(f.Status, domain.EmployeeStatusActive),
	}
}
