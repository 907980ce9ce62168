package postgresql

import (
	"context"
	"fmt"

	"github.com/brokerpay/payroll-backend-go/internal/domain/settings"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/database"
)

type taxSettingRepositoryImpl struct {
	db *database.DB
}

func NewTaxSettingRepository(db *database.DB) settings.TaxSettingRepository {
	return &taxSettingRepositoryImpl{db: db}
}

// ListActive implements settings.TaxSettingRepository. Creation order keeps
// the first-configured setting first, which is the one payroll uses.
func (r *taxSettingRepositoryImpl) ListActive(ctx context.Context) ([]settings.TaxSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, federal_tax_rate, state_tax_rate, local_tax_rate,
			social_security_rate, medicare_rate, is_active, created_at, updated_at
		FROM tax_settings
		WHERE is_active = TRUE
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax settings: %w", err)
	}
	defer rows.Close()

	var taxSettings []settings.TaxSetting
	for rows.Next() {
		var ts settings.TaxSetting
		if err := rows.Scan(
			&ts.ID,
			&ts.Name,
			&ts.FederalTaxRate,
			&ts.StateTaxRate,
			&ts.LocalTaxRate,
			&ts.SocialSecurityRate,
			&ts.MedicareRate,
			&ts.IsActive,
			&ts.CreatedAt,
			&ts.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax setting: %w", err)
		}
		taxSettings = append(taxSettings, ts)
	}
	return taxSettings, rows.Err()
}

type commissionRateRepositoryImpl struct {
	db *database.DB
}

func NewCommissionRateRepository(db *database.DB) settings.CommissionRateRepository {
	return &commissionRateRepositoryImpl{db: db}
}

// ListActive implements settings.CommissionRateRepository.
func (r *commissionRateRepositoryImpl) ListActive(ctx context.Context) ([]settings.CommissionRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, base_rate, min_sale_amount, max_sale_amount,
			is_active, created_at, updated_at
		FROM commission_rates
		WHERE is_active = TRUE
		ORDER BY min_sale_amount
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission rates: %w", err)
	}
	defer rows.Close()

	var rates []settings.CommissionRate
	for rows.Next() {
		var cr settings.CommissionRate
		if err := rows.Scan(
			&cr.ID,
			&cr.Name,
			&cr.Description,
			&cr.BaseRate,
			&cr.MinSaleAmount,
			&cr.MaxSaleAmount,
			&cr.IsActive,
			&cr.CreatedAt,
			&cr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission rate: %w", err)
		}
		rates = append(rates, cr)
	}
	return rates, rows.Err()
}
