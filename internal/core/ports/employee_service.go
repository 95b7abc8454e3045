package ports

import "context"

// AddEmployeeInput is the DTO passed from the transport layer to EmployeeService.
type AddEmployeeInput struct {
	EmployeeID    string
	Name          string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining string
	Role          string
}

// EmployeeService defines the intake use case.
type EmployeeService interface {
	AddEmployee(ctx context.Context, input AddEmployeeInput) error
}
