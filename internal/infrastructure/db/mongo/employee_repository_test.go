package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

func sampleEmployee() *domain.Employee {
	return &domain.Employee{
		EmployeeID:    "123",
		Name:          "Ann",
		Email:         "ann@x.com",
		PhoneNumber:   "9876543210",
		Department:    "Eng",
		DateOfJoining: "2024-01-01",
		Role:          "Dev",
	}
}

func TestEmployeeRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := repo.Create(context.Background(), sampleEmployee()); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: intake.employeestable index: employee_id_unique",
		}))

		err := repo.Create(context.Background(), sampleEmployee())
		if !errors.Is(err, domain.ErrDuplicateEmployee) {
			mt.Fatalf("expected ErrDuplicateEmployee, got %v", err)
		}
	})

	mt.Run("other write error", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		err := repo.Create(context.Background(), sampleEmployee())
		if err == nil || errors.Is(err, domain.ErrDuplicateEmployee) {
			mt.Fatalf("expected a non-duplicate error, got %v", err)
		}
	})
}

func TestEmployeeRepository_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates unique index", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := repo.EnsureIndexes(context.Background()); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "createIndexes" {
			mt.Fatalf("expected createIndexes command, got %+v", started)
		}
	})
}
