package settings

import "time"

// TaxSetting is a named flat-rate tax configuration. Rates are percentages
// scaled by 100. Nil optional rates resolve to their documented defaults at
// read time (state/local 0, social security 620, medicare 145).
type TaxSetting struct {
	ID                 string
	Name               string
	FederalTaxRate     int64
	StateTaxRate       *int64
	LocalTaxRate       *int64
	SocialSecurityRate *int64
	MedicareRate       *int64
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CommissionRate is an entry in the brokerage's rate schedule, bounded by an
// optional sale-amount band.
type CommissionRate struct {
	ID            string
	Name          string
	Description   *string
	BaseRate      int64 // percentage * 100
	MinSaleAmount int64 // in cents
	MaxSaleAmount *int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
