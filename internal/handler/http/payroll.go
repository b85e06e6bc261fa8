package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GeneratePeriods(w http.ResponseWriter, r *http.Request)
	ListPeriodPayments(w http.ResponseWriter, r *http.Request)
	ListEmployeePayments(w http.ResponseWriter, r *http.Request)
	ApprovePayment(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// employerIDFromClaims pulls the authenticated employer id out of the JWT.
func employerIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employerID, ok := claims["employer_id"].(string)
	return employerID, ok && employerID != ""
}

// ListPeriods implements PayrollHandler.
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	employerID, ok := employerIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employer_id claim is missing")
		return
	}

	periods, err := h.payrollService.ListPeriods(r.Context(), employerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// GeneratePeriods implements PayrollHandler. On-demand trigger for the same
// generation the scheduler runs hourly.
func (h *payrollHandlerImpl) GeneratePeriods(w http.ResponseWriter, r *http.Request) {
	employerID, ok := employerIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employer_id claim is missing")
		return
	}

	created, err := h.payrollService.GeneratePeriods(r.Context(), employerID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, created)
}

// ListPeriodPayments implements PayrollHandler.
func (h *payrollHandlerImpl) ListPeriodPayments(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")

	payments, err := h.payrollService.ListPeriodPayments(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// ListEmployeePayments implements PayrollHandler.
func (h *payrollHandlerImpl) ListEmployeePayments(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")

	payments, err := h.payrollService.ListEmployeePayments(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// ApprovePayment implements PayrollHandler.
func (h *payrollHandlerImpl) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	if err := h.payrollService.ApprovePayment(r.Context(), paymentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// Transition implements PayrollHandler.
func (h *payrollHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")

	var req payroll.TransitionPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	period, err := h.payrollService.Transition(r.Context(), periodID, payroll.PeriodStatus(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}
