package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/employee-intake/intake-service/internal/api/metrics"
	"github.com/employee-intake/intake-service/internal/core/domain"
	"github.com/employee-intake/intake-service/internal/core/ports"
)

// EmployeeHandler serves the intake endpoint.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Add handles POST /addEmployee.
//
// @Summary      Add an employee
// @Description  Persists one employee record. employee_id is unique; a second
// @Description  record with the same id is rejected and never overwrites the first.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      addEmployeeRequest  true  "Employee record"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /addEmployee [post]
func (h *EmployeeHandler) Add(c echo.Context) error {
	var req addEmployeeRequest
	if err := c.Bind(&req); err != nil {
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonInvalidPayload).Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonMissingFields).Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
	}

	start := time.Now()
	err := h.service.AddEmployee(c.Request().Context(), toAddEmployeeInput(req))
	switch {
	case err == nil:
		metrics.InsertDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
		metrics.EmployeesAddedTotal.Inc()
		return c.JSON(http.StatusOK, messageResponse{Message: msgEmployeeAdded})
	case errors.Is(err, domain.ErrMissingFields):
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonMissingFields).Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
	case errors.Is(err, domain.ErrDuplicateEmployee):
		metrics.InsertDuration.WithLabelValues("duplicate").Observe(time.Since(start).Seconds())
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonDuplicate).Inc()
		return c.JSON(http.StatusConflict, messageResponse{Message: msgDuplicateEntry})
	default:
		metrics.InsertDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonStoreError).Inc()
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: msgDatabaseError + rootCause(err).Error()})
	}
}

func toAddEmployeeInput(r addEmployeeRequest) ports.AddEmployeeInput {
	return ports.AddEmployeeInput{
		EmployeeID:    r.EmployeeID,
		Name:          r.Name,
		Email:         r.Email,
		PhoneNumber:   r.PhoneNumber,
		Department:    r.Department,
		DateOfJoining: r.DateOfJoining,
		Role:          r.Role,
	}
}

// rootCause strips the context wrapping added by repositories so the client
// sees the driver's own description of the failure.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
