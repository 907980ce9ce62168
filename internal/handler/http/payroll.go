package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brokerpay/payroll-backend-go/internal/domain/payroll"
	"github.com/brokerpay/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Calculations
	CalculateTaxWithholdings(w http.ResponseWriter, r *http.Request)
	CalculateNetPay(w http.ResponseWriter, r *http.Request)

	// Payment generation and lifecycle
	GeneratePayment(w http.ResponseWriter, r *http.Request)
	ProcessPayment(w http.ResponseWriter, r *http.Request)

	// Summary
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// grossAmountParam parses the gross_amount query parameter as cents.
func grossAmountParam(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("gross_amount")
	if raw == "" {
		return 0, false
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func (h *payrollHandlerImpl) CalculateTaxWithholdings(w http.ResponseWriter, r *http.Request) {
	grossAmount, ok := grossAmountParam(r)
	if !ok {
		response.BadRequest(w, "gross_amount must be a non-negative integer in cents", nil)
		return
	}

	withholdings, err := h.payrollService.CalculateTaxWithholdings(r.Context(), grossAmount)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.TaxWithholdingsResponse{
		FederalTax:     withholdings.FederalTax,
		StateTax:       withholdings.StateTax,
		LocalTax:       withholdings.LocalTax,
		SocialSecurity: withholdings.SocialSecurity,
		Medicare:       withholdings.Medicare,
	})
}

func (h *payrollHandlerImpl) CalculateNetPay(w http.ResponseWriter, r *http.Request) {
	grossAmount, ok := grossAmountParam(r)
	if !ok {
		response.BadRequest(w, "gross_amount must be a non-negative integer in cents", nil)
		return
	}

	netAmount, err := h.payrollService.CalculateNetPay(r.Context(), grossAmount)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int64{
		"gross_amount": grossAmount,
		"net_amount":   netAmount,
	})
}

func (h *payrollHandlerImpl) GeneratePayment(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.SuccessWithMessage(w, "No completed commissions in period; no payment generated", nil)
		return
	}

	response.Created(w, "Payment generated", result)
}

func (h *payrollHandlerImpl) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.payrollService.ProcessPayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment processed", nil)
}

func (h *payrollHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll period ID is required", nil)
		return
	}

	summary, err := h.payrollService.GetPeriodSummary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
