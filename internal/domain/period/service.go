package period

import "context"

// PayrollPeriodService defines business logic for payroll periods
type PayrollPeriodService interface {
	GetPeriod(ctx context.Context, id string) (PayrollPeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PayrollPeriodResponse, error)

	// CreatePeriod creates a period in the open state (admin only)
	CreatePeriod(ctx context.Context, req CreatePayrollPeriodRequest) (PayrollPeriodResponse, error)

	// UpdatePeriod advances the period status (admin only)
	UpdatePeriod(ctx context.Context, req UpdatePayrollPeriodRequest) (PayrollPeriodResponse, error)
}
