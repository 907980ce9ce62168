package http

import (
	"net/http"

	"github.com/brokerpay/payroll-backend-go/internal/domain/settings"
	"github.com/brokerpay/payroll-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	ListTaxSettings(w http.ResponseWriter, r *http.Request)
	ListCommissionRates(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

func (h *settingsHandlerImpl) ListTaxSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ListTaxSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) ListCommissionRates(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ListCommissionRates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
