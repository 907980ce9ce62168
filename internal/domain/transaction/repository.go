package transaction

import "context"

type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (Transaction, error)
	// List returns transactions ordered by transaction date descending.
	// A nil employeeID returns all transactions.
	List(ctx context.Context, employeeID *string) ([]Transaction, error)
	Create(ctx context.Context, newTransaction Transaction) (Transaction, error)
	Update(ctx context.Context, req UpdateTransactionRequest) error
}
