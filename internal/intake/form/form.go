// Package form holds the state of the employee intake form, the rules that
// gate its submission, and the controller that submits it.
package form

import (
	"fmt"
	"sync"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

// Labels are the user-facing names of the form fields.
var Labels = map[string]string{
	domain.FieldEmployeeID:    "Employee ID",
	domain.FieldName:          "Name",
	domain.FieldEmail:         "Email",
	domain.FieldPhoneNumber:   "Phone Number",
	domain.FieldDepartment:    "Department",
	domain.FieldDateOfJoining: "Date of Joining",
	domain.FieldRole:          "Role",
}

// FieldError is one failed rule, ready to be presented.
type FieldError struct {
	Field   string
	Message string
}

// Form is the mutable field state behind the intake form.
type Form struct {
	mu     sync.Mutex
	record domain.Employee
}

func New() *Form {
	return &Form{}
}

// Set stores value under the given wire name.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r := &f.record
	switch field {
	case domain.FieldEmployeeID:
		r.EmployeeID = value
	case domain.FieldName:
		r.Name = value
	case domain.FieldEmail:
		r.Email = value
	case domain.FieldPhoneNumber:
		r.PhoneNumber = value
	case domain.FieldDepartment:
		r.Department = value
	case domain.FieldDateOfJoining:
		r.DateOfJoining = value
	case domain.FieldRole:
		r.Role = value
	default:
		return fmt.Errorf("form: unknown field %q", field)
	}
	return nil
}

func (f *Form) Get(field string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record.Value(field)
}

// Record returns a copy of the current field values.
func (f *Form) Record() domain.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

// Reset clears every field.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record = domain.Employee{}
}

// Missing reports every empty field, in form order, as "<Label> is required.".
func (f *Form) Missing() []FieldError {
	record := f.Record()
	missing := record.MissingFields()
	errs := make([]FieldError, 0, len(missing))
	for _, field := range missing {
		errs = append(errs, FieldError{Field: field, Message: Labels[field] + " is required."})
	}
	return errs
}

// Validate runs the employee id, phone number and email rules independently
// and returns every failure in that order. A nil result means the record may
// be submitted.
func Validate(e domain.Employee) []FieldError {
	var errs []FieldError
	if msg := ValidateEmployeeID(e.EmployeeID); msg != "" {
		errs = append(errs, FieldError{Field: domain.FieldEmployeeID, Message: msg})
	}
	if msg := ValidatePhoneNumber(e.PhoneNumber); msg != "" {
		errs = append(errs, FieldError{Field: domain.FieldPhoneNumber, Message: msg})
	}
	if msg := ValidateEmail(e.Email); msg != "" {
		errs = append(errs, FieldError{Field: domain.FieldEmail, Message: msg})
	}
	return errs
}
