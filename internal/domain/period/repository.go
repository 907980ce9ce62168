package period

import "context"

type PayrollPeriodRepository interface {
	GetByID(ctx context.Context, id string) (PayrollPeriod, error)
	// List returns periods ordered by start date descending.
	List(ctx context.Context) ([]PayrollPeriod, error)
	Create(ctx context.Context, newPeriod PayrollPeriod) (PayrollPeriod, error)
	Update(ctx context.Context, req UpdatePayrollPeriodRequest) error
}
