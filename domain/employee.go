package domain

// Employee statuses.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// DefaultEmployeeRole is assumed when a form leaves the role blank.
const DefaultEmployeeRole = "agent"

// EmployeeRepository defines the persistence contract for the employees
// collection. Same degradation rules as LeadRepository.
type EmployeeRepository interface {
	ListEmployees() *Envelope[Employee]
	SaveEmployees(env *Envelope[Employee]) bool
	AddEmployee(employee Employee) *Envelope[Employee]
	GetEmployeeByID(raw string) *Employee
	UpdateEmployee(id int, patch EmployeePatch) (*Employee, bool)
	RemoveEmployee(id int) bool
}

// Employee is one staff member as stored in the employees collection.
type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// EmployeePatch carries partial updates; nil fields are left untouched.
type EmployeePatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Role       *string
	Department *string
	Status     *string
}
