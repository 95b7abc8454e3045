package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/employee-intake/intake-service/internal/core/domain"
	"github.com/employee-intake/intake-service/internal/core/ports"
)

// EmployeeService implements the single-write intake use case.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// AddEmployee checks that every attribute is present and performs one insert.
// Store errors are returned as-is so the caller can tell a duplicate key apart
// from any other failure; nothing is retried.
func (s *EmployeeService) AddEmployee(ctx context.Context, input ports.AddEmployeeInput) error {
	employee := &domain.Employee{
		EmployeeID:    input.EmployeeID,
		Name:          input.Name,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		Department:    input.Department,
		DateOfJoining: input.DateOfJoining,
		Role:          input.Role,
	}

	if missing := employee.MissingFields(); len(missing) > 0 {
		s.logger.Debug().Strs("missing", missing).Msg("employee rejected")
		return fmt.Errorf("add employee: %w", domain.ErrMissingFields)
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmployee) {
			s.logger.Info().Str("employee_id", employee.EmployeeID).Msg("duplicate employee rejected")
		} else {
			s.logger.Error().Err(err).Str("employee_id", employee.EmployeeID).Msg("failed to insert employee")
		}
		return err
	}

	s.logger.Info().
		Str("employee_id", employee.EmployeeID).
		Str("department", employee.Department).
		Msg("employee added")

	return nil
}
