package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/domain/worker"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance rejections carry a wire reason code.
	if code := clockin.Reason(err); code != "" {
		Rejected(w, code, err.Error())
		return
	}

	switch {
	// Not-found errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, clockin.ErrClockinNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Period payment not found")
	case errors.Is(err, employer.ErrEmployerNotFound):
		NotFound(w, "Employer not found")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrConfigMissing):
		BadRequest(w, "Payroll period configuration is missing", nil)
	case errors.Is(err, payroll.ErrUnsupportedLengthType):
		BadRequest(w, "Payroll period length type is not supported", nil)
	case errors.Is(err, payroll.ErrPendingPaymentsExist):
		Conflict(w, "Period has payments still pending approval")
	case errors.Is(err, payroll.ErrPaymentAlreadyMade):
		Conflict(w, "Period has an employee payment already paid out")
	case errors.Is(err, payroll.ErrUnsupportedTransition):
		Conflict(w, "Requested status transition is not supported")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
