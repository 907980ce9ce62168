package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/domain/payment"
	"github.com/brokerpay/payroll-backend-go/internal/domain/payroll"
	"github.com/brokerpay/payroll-backend-go/internal/domain/period"
	"github.com/brokerpay/payroll-backend-go/internal/domain/settings"
	"github.com/brokerpay/payroll-backend-go/internal/domain/transaction"
)

type PayrollServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	transactionRepo transaction.TransactionRepository
	taxSettingRepo  settings.TaxSettingRepository
	periodRepo      period.PayrollPeriodRepository
	paymentRepo     payment.PaymentRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	transactionRepo transaction.TransactionRepository,
	taxSettingRepo settings.TaxSettingRepository,
	periodRepo period.PayrollPeriodRepository,
	paymentRepo payment.PaymentRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:    employeeRepo,
		transactionRepo: transactionRepo,
		taxSettingRepo:  taxSettingRepo,
		periodRepo:      periodRepo,
		paymentRepo:     paymentRepo,
	}
}

// resolveTaxRates fetches the active tax configuration and resolves it to a
// concrete rate set. No active configuration means the hardcoded defaults.
// When more than one setting is active the first one wins; date-ranged or
// employee-specific brackets are not supported.
func (s *PayrollServiceImpl) resolveTaxRates(ctx context.Context) (payroll.TaxRates, error) {
	taxSettings, err := s.taxSettingRepo.ListActive(ctx)
	if err != nil {
		return payroll.TaxRates{}, fmt.Errorf("failed to fetch tax settings: %w", err)
	}

	if len(taxSettings) == 0 {
		return payroll.DefaultTaxRates, nil
	}

	return ratesFromSetting(taxSettings[0]), nil
}

// ratesFromSetting resolves nil optional rates to their defaults at read
// time, so nothing nullable flows into the arithmetic.
func ratesFromSetting(ts settings.TaxSetting) payroll.TaxRates {
	return payroll.TaxRates{
		Federal:        ts.FederalTaxRate,
		State:          rateOrDefault(ts.StateTaxRate, 0),
		Local:          rateOrDefault(ts.LocalTaxRate, 0),
		SocialSecurity: rateOrDefault(ts.SocialSecurityRate, payroll.DefaultTaxRates.SocialSecurity),
		Medicare:       rateOrDefault(ts.MedicareRate, payroll.DefaultTaxRates.Medicare),
	}
}

func rateOrDefault(rate *int64, fallback int64) int64 {
	if rate == nil {
		return fallback
	}
	return *rate
}

func (s *PayrollServiceImpl) CalculateTaxWithholdings(ctx context.Context, grossAmount int64) (payroll.TaxWithholdings, error) {
	rates, err := s.resolveTaxRates(ctx)
	if err != nil {
		return payroll.TaxWithholdings{}, err
	}

	return payroll.WithholdingsFor(grossAmount, rates), nil
}

func (s *PayrollServiceImpl) CalculateNetPay(ctx context.Context, grossAmount int64) (int64, error) {
	withholdings, err := s.CalculateTaxWithholdings(ctx, grossAmount)
	if err != nil {
		return 0, err
	}

	return payroll.NetPayFrom(grossAmount, withholdings), nil
}

func (s *PayrollServiceImpl) GeneratePayment(ctx context.Context, req payroll.GeneratePaymentRequest) (*payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	payPeriod, err := s.periodRepo.GetByID(ctx, req.PayrollPeriodID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.List(ctx, &emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// Aggregate completed transactions inside the period window. The stored
	// commission snapshots are summed as-is, never re-derived.
	var grossAmount int64
	for _, t := range transactions {
		if t.Status != transaction.StatusCompleted {
			continue
		}
		if !payPeriod.Contains(t.TransactionDate) {
			continue
		}
		grossAmount += t.CommissionAmount
	}

	if grossAmount == 0 {
		return nil, nil // no commissions to pay
	}

	withholdings, err := s.CalculateTaxWithholdings(ctx, grossAmount)
	if err != nil {
		return nil, err
	}
	netAmount := payroll.NetPayFrom(grossAmount, withholdings)

	created, err := s.paymentRepo.Create(ctx, payment.Payment{
		EmployeeID:      emp.ID,
		PayrollPeriodID: &payPeriod.ID,
		GrossAmount:     grossAmount,
		FederalTax:      withholdings.FederalTax,
		StateTax:        withholdings.StateTax,
		LocalTax:        withholdings.LocalTax,
		SocialSecurity:  withholdings.SocialSecurity,
		Medicare:        withholdings.Medicare,
		NetAmount:       netAmount,
		PaymentMethod:   req.Method(),
		PaymentStatus:   payment.StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment for employee %s: %w", emp.ID, err)
	}

	resp := mapToPaymentResponse(created)
	return &resp, nil
}

func (s *PayrollServiceImpl) ProcessPayment(ctx context.Context, paymentID string) error {
	status := payment.StatusProcessed
	now := time.Now()

	return s.paymentRepo.Update(ctx, payment.UpdatePaymentRequest{
		ID:            paymentID,
		PaymentStatus: &status,
		PaymentDate:   &now,
	})
}

func (s *PayrollServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return mapToPaymentResponse(p), nil
}

func (s *PayrollServiceImpl) ListPayments(ctx context.Context, employeeID *string) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToPaymentResponse(p))
	}

	return result, nil
}

func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, payrollPeriodID string) (payroll.PayrollSummaryResponse, error) {
	payPeriod, err := s.periodRepo.GetByID(ctx, payrollPeriodID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	payments, err := s.paymentRepo.ListByPeriod(ctx, payPeriod.ID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list period payments: %w", err)
	}

	summary := payroll.PayrollSummaryResponse{
		PayrollPeriodID: payPeriod.ID,
		StartDate:       payPeriod.StartDate.Format("2006-01-02"),
		EndDate:         payPeriod.EndDate.Format("2006-01-02"),
		PaymentCount:    len(payments),
	}
	for _, p := range payments {
		summary.TotalGrossAmount += p.GrossAmount
		summary.TotalTaxWithholdings += p.FederalTax + p.StateTax + p.LocalTax + p.SocialSecurity + p.Medicare
		summary.TotalNetAmount += p.NetAmount
	}

	return summary, nil
}

func mapToPaymentResponse(p payment.Payment) payment.PaymentResponse {
	var paymentDate *string
	if p.PaymentDate != nil {
		str := p.PaymentDate.Format(time.RFC3339)
		paymentDate = &str
	}

	return payment.PaymentResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		PayrollPeriodID: p.PayrollPeriodID,
		GrossAmount:     p.GrossAmount,
		FederalTax:      p.FederalTax,
		StateTax:        p.StateTax,
		LocalTax:        p.LocalTax,
		SocialSecurity:  p.SocialSecurity,
		Medicare:        p.Medicare,
		NetAmount:       p.NetAmount,
		PaymentMethod:   string(p.PaymentMethod),
		PaymentStatus:   string(p.PaymentStatus),
		PaymentDate:     paymentDate,
		Notes:           p.Notes,
	}
}
