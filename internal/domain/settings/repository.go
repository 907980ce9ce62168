package settings

import "context"

// TaxSettingRepository reads tax configurations. ListActive returns only
// active settings, in stable creation order; the first row is the one payroll
// calculations use.
type TaxSettingRepository interface {
	ListActive(ctx context.Context) ([]TaxSetting, error)
}

type CommissionRateRepository interface {
	ListActive(ctx context.Context) ([]CommissionRate, error)
}
