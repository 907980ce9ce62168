package transaction

import "context"

// TransactionService defines business logic for sale transactions
type TransactionService interface {
	// GetTransaction retrieves a single transaction by ID
	GetTransaction(ctx context.Context, id string) (TransactionResponse, error)

	// ListTransactions lists transactions, optionally filtered by employee
	ListTransactions(ctx context.Context, employeeID *string) ([]TransactionResponse, error)

	// CreateTransaction creates a transaction with the commission amount
	// snapshotted from the sale amount and rate (admin only)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)

	// UpdateTransaction updates a transaction; the commission snapshot is
	// recomputed only when both sale amount and rate are supplied (admin only)
	UpdateTransaction(ctx context.Context, req UpdateTransactionRequest) (TransactionResponse, error)
}
