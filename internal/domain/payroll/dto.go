package payroll

import (
	"github.com/brokerpay/payroll-backend-go/internal/domain/payment"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/validator"
)

type GeneratePaymentRequest struct {
	EmployeeID      string `json:"employee_id"`
	PayrollPeriodID string `json:"payroll_period_id"`
	PaymentMethod   string `json:"payment_method,omitempty"` // defaults to direct_deposit
}

func (r *GeneratePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PayrollPeriodID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_period_id", Message: "is required"})
	}
	if r.PaymentMethod != "" && !payment.IsValidMethod(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be direct_deposit, check, or wire_transfer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Method resolves the requested payment method, defaulting to direct deposit.
func (r *GeneratePaymentRequest) Method() payment.Method {
	if r.PaymentMethod == "" {
		return payment.MethodDirectDeposit
	}
	return payment.Method(r.PaymentMethod)
}

type TaxWithholdingsResponse struct {
	FederalTax     int64 `json:"federal_tax"`
	StateTax       int64 `json:"state_tax"`
	LocalTax       int64 `json:"local_tax"`
	SocialSecurity int64 `json:"social_security"`
	Medicare       int64 `json:"medicare"`
}

type PayrollSummaryResponse struct {
	PayrollPeriodID      string `json:"payroll_period_id"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	PaymentCount         int    `json:"payment_count"`
	TotalGrossAmount     int64  `json:"total_gross_amount"`
	TotalTaxWithholdings int64  `json:"total_tax_withholdings"`
	TotalNetAmount       int64  `json:"total_net_amount"`
}
