package domain

import "errors"

// Wire and column names of the seven employee attributes, in form order.
const (
	FieldEmployeeID    = "employee_id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhoneNumber   = "phone_number"
	FieldDepartment    = "department"
	FieldDateOfJoining = "date_of_joining"
	FieldRole          = "role"
)

// Fields lists every attribute of an employee record in form order.
var Fields = []string{
	FieldEmployeeID,
	FieldName,
	FieldEmail,
	FieldPhoneNumber,
	FieldDepartment,
	FieldDateOfJoining,
	FieldRole,
}

var ErrMissingFields = errors.New("all fields are required")
var ErrDuplicateEmployee = errors.New("employee already exists")

// Employee is a single intake record, keyed by EmployeeID. It is written once
// and never updated.
type Employee struct {
	EmployeeID    string `json:"employee_id" bson:"employee_id"`
	Name          string `json:"name" bson:"name"`
	Email         string `json:"email" bson:"email"`
	PhoneNumber   string `json:"phone_number" bson:"phone_number"`
	Department    string `json:"department" bson:"department"`
	DateOfJoining string `json:"date_of_joining" bson:"date_of_joining"`
	Role          string `json:"role" bson:"role"`
}

// Value returns the attribute stored under the given wire name.
func (e *Employee) Value(field string) (string, bool) {
	switch field {
	case FieldEmployeeID:
		return e.EmployeeID, true
	case FieldName:
		return e.Name, true
	case FieldEmail:
		return e.Email, true
	case FieldPhoneNumber:
		return e.PhoneNumber, true
	case FieldDepartment:
		return e.Department, true
	case FieldDateOfJoining:
		return e.DateOfJoining, true
	case FieldRole:
		return e.Role, true
	}
	return "", false
}

// MissingFields reports the attributes that are empty, in form order.
func (e *Employee) MissingFields() []string {
	var missing []string
	for _, f := range Fields {
		if v, _ := e.Value(f); v == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
