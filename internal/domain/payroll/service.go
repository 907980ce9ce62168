package payroll

import (
	"context"

	"github.com/brokerpay/payroll-backend-go/internal/domain/payment"
)

// PayrollService is the payroll calculation pipeline: commission aggregation,
// tax withholding, net pay derivation, payment generation, and the payment
// lifecycle. Calculations are unconditionally callable; admin gating for the
// mutations happens at the HTTP boundary.
type PayrollService interface {
	// CalculateTaxWithholdings resolves the active tax configuration (falling
	// back to DefaultTaxRates when none exists) and computes the breakdown
	// for a gross amount in cents.
	CalculateTaxWithholdings(ctx context.Context, grossAmount int64) (TaxWithholdings, error)

	// CalculateNetPay returns the gross amount minus all withholdings,
	// clamped at zero.
	CalculateNetPay(ctx context.Context, grossAmount int64) (int64, error)

	// GeneratePayment aggregates the employee's completed transactions inside
	// the period window into a pending payment. Returns (nil, nil) when there
	// are no commissions to pay; no payment row is created in that case.
	GeneratePayment(ctx context.Context, req GeneratePaymentRequest) (*payment.PaymentResponse, error)

	// ProcessPayment marks a payment processed and stamps the payment date.
	ProcessPayment(ctx context.Context, paymentID string) error

	// GetPayment retrieves a single payment by ID
	GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error)

	// ListPayments lists payments, optionally filtered by employee
	ListPayments(ctx context.Context, employeeID *string) ([]payment.PaymentResponse, error)

	// GetPeriodSummary totals gross, withholdings, and net across all
	// payments generated for a period.
	GetPeriodSummary(ctx context.Context, payrollPeriodID string) (PayrollSummaryResponse, error)
}
