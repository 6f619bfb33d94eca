package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter ListEmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// ListByManager is the reverse index for the manager back-reference.
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)
}
