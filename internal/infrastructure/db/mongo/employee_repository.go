package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

const employeeCollection = "employeestable"

// EmployeeRepository stores intake records as documents. Uniqueness of
// employee_id comes from the index created by EnsureIndexes.
type EmployeeRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{db: db, coll: db.Collection(employeeCollection)}
}

// EnsureIndexes creates the unique index on employee_id. It is idempotent.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("employee_id_unique"),
	})
	if err != nil {
		return fmt.Errorf("create employee index: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmployee
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Ping(ctx context.Context) error {
	return r.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
