package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/domain/payment"
	"github.com/brokerpay/payroll-backend-go/internal/domain/payroll"
	"github.com/brokerpay/payroll-backend-go/internal/domain/period"
	"github.com/brokerpay/payroll-backend-go/internal/domain/settings"
	"github.com/brokerpay/payroll-backend-go/internal/domain/transaction"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = uuid.New().String()
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

type fakeTransactionRepo struct {
	transactions []transaction.Transaction
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return transaction.Transaction{}, transaction.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) List(ctx context.Context, employeeID *string) ([]transaction.Transaction, error) {
	if employeeID == nil {
		return f.transactions, nil
	}
	var result []transaction.Transaction
	for _, t := range f.transactions {
		if t.EmployeeID == *employeeID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	t.ID = uuid.New().String()
	f.transactions = append(f.transactions, t)
	return t, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, req transaction.UpdateTransactionRequest) error {
	return nil
}

type fakeTaxSettingRepo struct {
	settings []settings.TaxSetting
}

func (f *fakeTaxSettingRepo) ListActive(ctx context.Context) ([]settings.TaxSetting, error) {
	var active []settings.TaxSetting
	for _, s := range f.settings {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active, nil
}

type fakePeriodRepo struct {
	periods map[string]period.PayrollPeriod
}

func (f *fakePeriodRepo) GetByID(ctx context.Context, id string) (period.PayrollPeriod, error) {
	p, ok := f.periods[id]
	if !ok {
		return period.PayrollPeriod{}, period.ErrPeriodNotFound
	}
	return p, nil
}

func (f *fakePeriodRepo) List(ctx context.Context) ([]period.PayrollPeriod, error) {
	var result []period.PayrollPeriod
	for _, p := range f.periods {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePeriodRepo) Create(ctx context.Context, p period.PayrollPeriod) (period.PayrollPeriod, error) {
	p.ID = uuid.New().String()
	f.periods[p.ID] = p
	return p, nil
}

func (f *fakePeriodRepo) Update(ctx context.Context, req period.UpdatePayrollPeriodRequest) error {
	return nil
}

type fakePaymentRepo struct {
	payments []payment.Payment
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return payment.Payment{}, payment.ErrPaymentNotFound
}

func (f *fakePaymentRepo) List(ctx context.Context, employeeID *string) ([]payment.Payment, error) {
	if employeeID == nil {
		return f.payments, nil
	}
	var result []payment.Payment
	for _, p := range f.payments {
		if p.EmployeeID == *employeeID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) ListByPeriod(ctx context.Context, payrollPeriodID string) ([]payment.Payment, error) {
	var result []payment.Payment
	for _, p := range f.payments {
		if p.PayrollPeriodID != nil && *p.PayrollPeriodID == payrollPeriodID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, req payment.UpdatePaymentRequest) error {
	for i := range f.payments {
		if f.payments[i].ID == req.ID {
			if req.PaymentStatus != nil {
				f.payments[i].PaymentStatus = *req.PaymentStatus
			}
			if req.PaymentDate != nil {
				f.payments[i].PaymentDate = req.PaymentDate
			}
			return nil
		}
	}
	return payment.ErrPaymentNotFound
}

type fixture struct {
	service      payroll.PayrollService
	employeeRepo *fakeEmployeeRepo
	txRepo       *fakeTransactionRepo
	taxRepo      *fakeTaxSettingRepo
	periodRepo   *fakePeriodRepo
	paymentRepo  *fakePaymentRepo
}

func newFixture() *fixture {
	f := &fixture{
		employeeRepo: &fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		txRepo:       &fakeTransactionRepo{},
		taxRepo:      &fakeTaxSettingRepo{},
		periodRepo:   &fakePeriodRepo{periods: map[string]period.PayrollPeriod{}},
		paymentRepo:  &fakePaymentRepo{},
	}
	f.service = NewPayrollService(f.employeeRepo, f.txRepo, f.taxRepo, f.periodRepo, f.paymentRepo)
	return f
}

func (f *fixture) addEmployee(t *testing.T) employee.Employee {
	t.Helper()
	e, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		FirstName:          "Ava",
		LastName:           "Brooks",
		Email:              fmt.Sprintf("ava+%s@brokerage.test", uuid.New().String()[:8]),
		BaseCommissionRate: 500,
		EmploymentStatus:   employee.EmploymentStatusActive,
	})
	require.NoError(t, err)
	return e
}

func (f *fixture) addPeriod(t *testing.T, start, end time.Time) period.PayrollPeriod {
	t.Helper()
	p, err := f.periodRepo.Create(context.Background(), period.PayrollPeriod{
		Name:      "Test Period",
		StartDate: start,
		EndDate:   end,
		Status:    period.StatusOpen,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) addTransaction(emp employee.Employee, commission int64, date time.Time, status transaction.Status) {
	f.txRepo.transactions = append(f.txRepo.transactions, transaction.Transaction{
		ID:               uuid.New().String(),
		EmployeeID:       emp.ID,
		PropertyAddress:  "1 Main St",
		SaleAmount:       commission * 20, // 5% rate
		CommissionRate:   500,
		CommissionAmount: commission,
		TransactionDate:  date,
		Status:           status,
	})
}

func TestCalculateTaxWithholdingsDefaults(t *testing.T) {
	f := newFixture()

	w, err := f.service.CalculateTaxWithholdings(context.Background(), 100000)
	require.NoError(t, err)

	assert.Equal(t, int64(12000), w.FederalTax)
	assert.Equal(t, int64(0), w.StateTax)
	assert.Equal(t, int64(0), w.LocalTax)
	assert.Equal(t, int64(6200), w.SocialSecurity)
	assert.Equal(t, int64(1450), w.Medicare)
}

func TestCalculateTaxWithholdingsFirstActiveSettingWins(t *testing.T) {
	f := newFixture()
	state := int64(300)
	f.taxRepo.settings = []settings.TaxSetting{
		{ID: "a", Name: "Primary", FederalTaxRate: 1000, StateTaxRate: &state, IsActive: true},
		{ID: "b", Name: "Secondary", FederalTaxRate: 2500, IsActive: true},
	}

	w, err := f.service.CalculateTaxWithholdings(context.Background(), 100000)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), w.FederalTax, "first active setting should win")
	assert.Equal(t, int64(3000), w.StateTax)
	// Nil optional rates resolve to their defaults, not zero.
	assert.Equal(t, int64(6200), w.SocialSecurity)
	assert.Equal(t, int64(1450), w.Medicare)
}

func TestCalculateTaxWithholdingsIgnoresInactiveSettings(t *testing.T) {
	f := newFixture()
	f.taxRepo.settings = []settings.TaxSetting{
		{ID: "a", Name: "Disabled", FederalTaxRate: 9999, IsActive: false},
	}

	w, err := f.service.CalculateTaxWithholdings(context.Background(), 100000)
	require.NoError(t, err)

	assert.Equal(t, int64(12000), w.FederalTax, "inactive settings should fall back to defaults")
}

func TestCalculateNetPay(t *testing.T) {
	f := newFixture()

	net, err := f.service.CalculateNetPay(context.Background(), 100000)
	require.NoError(t, err)
	assert.Equal(t, int64(80350), net)
}

func TestCalculateNetPayClampedAtZero(t *testing.T) {
	f := newFixture()
	f.taxRepo.settings = []settings.TaxSetting{
		{ID: "a", Name: "Confiscatory", FederalTaxRate: 12000, IsActive: true},
	}

	net, err := f.service.CalculateNetPay(context.Background(), 100000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), net)
}

func TestGeneratePayment(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)
	p := f.addPeriod(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	f.addTransaction(emp, 1000000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)
	f.addTransaction(emp, 400000, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)

	resp, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      emp.ID,
		PayrollPeriodID: p.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(1400000), resp.GrossAmount)
	assert.Equal(t, int64(168000), resp.FederalTax)
	assert.Equal(t, int64(86800), resp.SocialSecurity)
	assert.Equal(t, int64(20300), resp.Medicare)
	assert.Equal(t, int64(1400000-168000-86800-20300), resp.NetAmount)
	assert.Equal(t, "direct_deposit", resp.PaymentMethod)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Nil(t, resp.PaymentDate)
	require.NotNil(t, resp.PayrollPeriodID)
	assert.Equal(t, p.ID, *resp.PayrollPeriodID)
}

func TestGeneratePaymentExcludesOutOfWindowAndNonCompleted(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)
	p := f.addPeriod(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	// Counted: completed, on the inclusive boundaries.
	f.addTransaction(emp, 100000, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)
	f.addTransaction(emp, 200000, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)
	// Excluded: outside the window.
	f.addTransaction(emp, 999999, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)
	f.addTransaction(emp, 999999, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)
	// Excluded: wrong status.
	f.addTransaction(emp, 999999, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), transaction.StatusPending)
	f.addTransaction(emp, 999999, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), transaction.StatusCancelled)

	resp, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      emp.ID,
		PayrollPeriodID: p.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(300000), resp.GrossAmount)
}

func TestGeneratePaymentNoCommissionsIsNoOp(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)
	p := f.addPeriod(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	resp, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      emp.ID,
		PayrollPeriodID: p.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, f.paymentRepo.payments, "no payment row should be created")
}

func TestGeneratePaymentUnknownEmployee(t *testing.T) {
	f := newFixture()
	p := f.addPeriod(t, time.Now().AddDate(0, 0, -7), time.Now())

	_, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      uuid.New().String(),
		PayrollPeriodID: p.ID,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGeneratePaymentUnknownPeriod(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)

	_, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      emp.ID,
		PayrollPeriodID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, period.ErrPeriodNotFound)
}

func TestGeneratePaymentCustomMethod(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)
	p := f.addPeriod(t,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	f.addTransaction(emp, 50000, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)

	resp, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      emp.ID,
		PayrollPeriodID: p.ID,
		PaymentMethod:   "check",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "check", resp.PaymentMethod)
}

func TestProcessPayment(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)
	created, err := f.paymentRepo.Create(context.Background(), payment.Payment{
		EmployeeID:    emp.ID,
		GrossAmount:   100000,
		NetAmount:     80350,
		PaymentMethod: payment.MethodDirectDeposit,
		PaymentStatus: payment.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.ProcessPayment(context.Background(), created.ID))

	updated, err := f.paymentRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusProcessed, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentDate, "processing must stamp the payment date")
	assert.WithinDuration(t, time.Now(), *updated.PaymentDate, time.Minute)
}

func TestProcessPaymentNotFound(t *testing.T) {
	f := newFixture()
	err := f.service.ProcessPayment(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestGetPeriodSummary(t *testing.T) {
	f := newFixture()
	emp := f.addEmployee(t)
	p := f.addPeriod(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	f.addTransaction(emp, 1000000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), transaction.StatusCompleted)

	resp, err := f.service.GeneratePayment(context.Background(), payroll.GeneratePaymentRequest{
		EmployeeID:      emp.ID,
		PayrollPeriodID: p.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	summary, err := f.service.GetPeriodSummary(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, summary.PayrollPeriodID)
	assert.Equal(t, 1, summary.PaymentCount)
	assert.Equal(t, int64(1000000), summary.TotalGrossAmount)
	assert.Equal(t, resp.FederalTax+resp.StateTax+resp.LocalTax+resp.SocialSecurity+resp.Medicare, summary.TotalTaxWithholdings)
	assert.Equal(t, resp.NetAmount, summary.TotalNetAmount)
	assert.Equal(t, summary.TotalGrossAmount, summary.TotalTaxWithholdings+summary.TotalNetAmount)
}
