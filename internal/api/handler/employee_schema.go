package handler

// Response messages of POST /addEmployee. Clients display them verbatim.
const (
	msgEmployeeAdded  = "Employee added successfully!"
	msgFieldsRequired = "All fields are required."
	msgDuplicateEntry = "Duplicate entry Exists."
	msgDatabaseError  = "Database error: "
)

// messageResponse is the envelope of every intake response, success or not.
type messageResponse struct {
	Message string `json:"message"`
}

type addEmployeeRequest struct {
	EmployeeID    string `json:"employee_id"     validate:"required" example:"123"`
	Name          string `json:"name"            validate:"required" example:"Ann"`
	Email         string `json:"email"           validate:"required" example:"ann@x.com"`
	PhoneNumber   string `json:"phone_number"    validate:"required" example:"9876543210"`
	Department    string `json:"department"      validate:"required" example:"Eng"`
	DateOfJoining string `json:"date_of_joining" validate:"required" example:"2024-01-01"`
	Role          string `json:"role"            validate:"required" example:"Dev"`
}
