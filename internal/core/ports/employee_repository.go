package ports

import (
	"context"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

// EmployeeRepository is the persistence store behind the intake endpoint.
type EmployeeRepository interface {
	// Create inserts exactly one record. It returns domain.ErrDuplicateEmployee
	// when the store's unique key on employee_id rejects the row; the existing
	// row is never overwritten.
	Create(ctx context.Context, e *domain.Employee) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
