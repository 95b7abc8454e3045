package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

// uniqueViolation is the SQLSTATE raised when a unique constraint rejects a row.
const uniqueViolation = "23505"

const insertEmployee = `
insert into employeestable
  (employee_id, name, email, phone_number, department, date_of_joining, role)
values
  ($1, $2, $3, $4, $5, $6::date, $7)`

// Pool is the subset of *pgxpool.Pool the repository needs.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type EmployeeRepository struct {
	pool Pool
}

func NewEmployeeRepository(pool Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create issues a single parameterized insert. A unique-key rejection on
// employee_id is reported as domain.ErrDuplicateEmployee.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	_, err := r.pool.Exec(ctx, insertEmployee,
		e.EmployeeID,
		e.Name,
		e.Email,
		e.PhoneNumber,
		e.Department,
		e.DateOfJoining,
		e.Role,
	)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == uniqueViolation {
			return domain.ErrDuplicateEmployee
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
