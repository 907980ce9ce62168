package settings

import "context"

// SettingsService exposes read-only configuration listings
type SettingsService interface {
	ListTaxSettings(ctx context.Context) ([]TaxSettingResponse, error)
	ListCommissionRates(ctx context.Context) ([]CommissionRateResponse, error)
}
