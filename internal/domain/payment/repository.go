package payment

import "context"

type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (Payment, error)
	// List returns payments ordered by creation time descending.
	// A nil employeeID returns all payments.
	List(ctx context.Context, employeeID *string) ([]Payment, error)
	ListByPeriod(ctx context.Context, payrollPeriodID string) ([]Payment, error)
	Create(ctx context.Context, newPayment Payment) (Payment, error)
	Update(ctx context.Context, req UpdatePaymentRequest) error
}
