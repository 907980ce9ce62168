package payroll

// TaxRates is the resolved flat-rate configuration used for withholding math.
// All rates are percentages scaled by 100 (1200 = 12.00%).
type TaxRates struct {
	Federal        int64
	State          int64
	Local          int64
	SocialSecurity int64
	Medicare       int64
}

// DefaultTaxRates applies when no active tax setting is configured:
// 12% federal, 0% state/local, 6.2% social security, 1.45% medicare.
var DefaultTaxRates = TaxRates{
	Federal:        1200,
	State:          0,
	Local:          0,
	SocialSecurity: 620,
	Medicare:       145,
}

// TaxWithholdings is the five-component breakdown of deductions applied to a
// gross commission amount. All values are in cents.
type TaxWithholdings struct {
	FederalTax     int64
	StateTax       int64
	LocalTax       int64
	SocialSecurity int64
	Medicare       int64
}

// Total sums all withholding components.
func (w TaxWithholdings) Total() int64 {
	return w.FederalTax + w.StateTax + w.LocalTax + w.SocialSecurity + w.Medicare
}
