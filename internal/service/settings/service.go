package settings

import (
	"context"

	"github.com/brokerpay/payroll-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	taxSettingRepo     settings.TaxSettingRepository
	commissionRateRepo settings.CommissionRateRepository
}

func NewSettingsService(
	taxSettingRepo settings.TaxSettingRepository,
	commissionRateRepo settings.CommissionRateRepository,
) settings.SettingsService {
	return &SettingsServiceImpl{
		taxSettingRepo:     taxSettingRepo,
		commissionRateRepo: commissionRateRepo,
	}
}

func (s *SettingsServiceImpl) ListTaxSettings(ctx context.Context) ([]settings.TaxSettingResponse, error) {
	taxSettings, err := s.taxSettingRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]settings.TaxSettingResponse, 0, len(taxSettings))
	for _, ts := range taxSettings {
		result = append(result, settings.TaxSettingResponse{
			ID:                 ts.ID,
			Name:               ts.Name,
			FederalTaxRate:     ts.FederalTaxRate,
			StateTaxRate:       resolveRate(ts.StateTaxRate, 0),
			LocalTaxRate:       resolveRate(ts.LocalTaxRate, 0),
			SocialSecurityRate: resolveRate(ts.SocialSecurityRate, 620),
			MedicareRate:       resolveRate(ts.MedicareRate, 145),
			IsActive:           ts.IsActive,
		})
	}

	return result, nil
}

func (s *SettingsServiceImpl) ListCommissionRates(ctx context.Context) ([]settings.CommissionRateResponse, error) {
	rates, err := s.commissionRateRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]settings.CommissionRateResponse, 0, len(rates))
	for _, r := range rates {
		result = append(result, settings.CommissionRateResponse{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			BaseRate:      r.BaseRate,
			MinSaleAmount: r.MinSaleAmount,
			MaxSaleAmount: r.MaxSaleAmount,
			IsActive:      r.IsActive,
		})
	}

	return result, nil
}

func resolveRate(rate *int64, fallback int64) int64 {
	if rate == nil {
		return fallback
	}
	return *rate
}
