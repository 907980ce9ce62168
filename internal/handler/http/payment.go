package http

import (
	"net/http"

	"github.com/brokerpay/payroll-backend-go/internal/domain/payroll"
	"github.com/brokerpay/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	GetPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPaymentHandler(payrollService payroll.PayrollService) PaymentHandler {
	return &paymentHandlerImpl{payrollService: payrollService}
}

func (h *paymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *paymentHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	result, err := h.payrollService.ListPayments(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
