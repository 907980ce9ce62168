package settings

type TaxSettingResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FederalTaxRate     int64  `json:"federal_tax_rate"`
	StateTaxRate       int64  `json:"state_tax_rate"`
	LocalTaxRate       int64  `json:"local_tax_rate"`
	SocialSecurityRate int64  `json:"social_security_rate"`
	MedicareRate       int64  `json:"medicare_rate"`
	IsActive           bool   `json:"is_active"`
}

type CommissionRateResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	BaseRate      int64   `json:"base_rate"`
	MinSaleAmount int64   `json:"min_sale_amount"`
	MaxSaleAmount *int64  `json:"max_sale_amount,omitempty"`
	IsActive      bool    `json:"is_active"`
}
