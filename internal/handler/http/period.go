package http

import (
	"encoding/json"
	"net/http"

	"github.com/brokerpay/payroll-backend-go/internal/domain/period"
	"github.com/brokerpay/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollPeriodHandler interface {
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	UpdatePeriod(w http.ResponseWriter, r *http.Request)
}

type payrollPeriodHandlerImpl struct {
	periodService period.PayrollPeriodService
}

func NewPayrollPeriodHandler(periodService period.PayrollPeriodService) PayrollPeriodHandler {
	return &payrollPeriodHandlerImpl{periodService: periodService}
}

func (h *payrollPeriodHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll period ID is required", nil)
		return
	}

	result, err := h.periodService.GetPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollPeriodHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.periodService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollPeriodHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req period.CreatePayrollPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.periodService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

func (h *payrollPeriodHandlerImpl) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll period ID is required", nil)
		return
	}

	var req period.UpdatePayrollPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.periodService.UpdatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
