package form

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Messages shown when a format rule fails.
const (
	MsgEmployeeID  = "Employee ID must be less than 5 digits."
	MsgPhoneNumber = "Phone number must be exactly 10 digits."
	MsgEmail       = "Please enter a valid email address."
)

var (
	employeeIDPattern  = regexp.MustCompile(`^\d{1,5}$`)
	phoneNumberPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern       = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)
)

// Custom validator tags backed by the patterns above.
const (
	tagEmployeeID = "employee_id"
	tagPhone      = "phone10"
	tagEmail      = "intake_email"
)

var rules = newRules()

func newRules() *validator.Validate {
	v := validator.New()
	mustRegister(v, tagEmployeeID, employeeIDPattern)
	mustRegister(v, tagPhone, phoneNumberPattern)
	mustRegister(v, tagEmail, emailPattern)
	return v
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

func check(value, tag, msg string) string {
	if err := rules.Var(value, tag); err != nil {
		return msg
	}
	return ""
}

// ValidateEmployeeID returns an error message unless value is 1 to 5 digits.
func ValidateEmployeeID(value string) string {
	return check(value, tagEmployeeID, MsgEmployeeID)
}

// ValidatePhoneNumber returns an error message unless value is exactly 10 digits.
func ValidatePhoneNumber(value string) string {
	return check(value, tagPhone, MsgPhoneNumber)
}

// ValidateEmail returns an error message unless value looks like local@domain.tld.
func ValidateEmail(value string) string {
	return check(value, tagEmail, MsgEmail)
}
