package payroll

// All payroll arithmetic is fixed-point: amounts are int64 cents, rates are
// int64 percentages scaled by 100 (500 = 5.00%). Rounding is half-up, which
// matches ordinary arithmetic rounding for the non-negative domain.

// applyRate computes round(amount * rate / 10000). Inputs must be non-negative.
func applyRate(amount, rate int64) int64 {
	return (amount*rate + 5000) / 10000
}

// CalculateCommission returns the commission earned on a sale, in cents.
func CalculateCommission(saleAmount, commissionRate int64) int64 {
	return applyRate(saleAmount, commissionRate)
}

// WithholdingsFor computes the withholding breakdown for a gross amount under
// the given rates. Pure; rate resolution happens before this is called.
func WithholdingsFor(grossAmount int64, rates TaxRates) TaxWithholdings {
	return TaxWithholdings{
		FederalTax:     applyRate(grossAmount, rates.Federal),
		StateTax:       applyRate(grossAmount, rates.State),
		LocalTax:       applyRate(grossAmount, rates.Local),
		SocialSecurity: applyRate(grossAmount, rates.SocialSecurity),
		Medicare:       applyRate(grossAmount, rates.Medicare),
	}
}

// NetPayFrom derives net pay from a gross amount and its withholdings,
// clamped at zero. Net pay is never negative even when configured rates sum
// past 100%.
func NetPayFrom(grossAmount int64, withholdings TaxWithholdings) int64 {
	net := grossAmount - withholdings.Total()
	if net < 0 {
		return 0
	}
	return net
}
