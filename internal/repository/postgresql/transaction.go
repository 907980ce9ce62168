package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/transaction"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

const transactionColumns = `id, employee_id, property_address, property_city, property_state,
		property_zip, sale_amount, commission_rate, commission_amount, transaction_date,
		status, notes, created_at, updated_at`

func scanTransaction(row pgx.Row) (transaction.Transaction, error) {
	var t transaction.Transaction
	err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.PropertyAddress,
		&t.PropertyCity,
		&t.PropertyState,
		&t.PropertyZip,
		&t.SaleAmount,
		&t.CommissionRate,
		&t.CommissionAmount,
		&t.TransactionDate,
		&t.Status,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// GetByID implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transaction.Transaction{}, transaction.ErrTransactionNotFound
		}
		return transaction.Transaction{}, fmt.Errorf("failed to get transaction with id %s: %w", id, err)
	}
	return t, nil
}

// List implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) List(ctx context.Context, employeeID *string) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	args := []interface{}{}
	if employeeID != nil {
		query += ` WHERE employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY transaction_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Create implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Create(ctx context.Context, newTransaction transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, employee_id, property_address, property_city, property_state,
			property_zip, sale_amount, commission_rate, commission_amount, transaction_date,
			status, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + transactionColumns

	t, err := scanTransaction(q.QueryRow(ctx, query,
		newTransaction.EmployeeID,
		newTransaction.PropertyAddress,
		newTransaction.PropertyCity,
		newTransaction.PropertyState,
		newTransaction.PropertyZip,
		newTransaction.SaleAmount,
		newTransaction.CommissionRate,
		newTransaction.CommissionAmount,
		newTransaction.TransactionDate,
		newTransaction.Status,
		newTransaction.Notes,
	))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return t, nil
}

// Update implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Update(ctx context.Context, req transaction.UpdateTransactionRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Status != nil && *req.Status != "" {
		updates["status"] = *req.Status
	}
	if req.SaleAmount != nil {
		updates["sale_amount"] = *req.SaleAmount
	}
	if req.CommissionRate != nil {
		updates["commission_rate"] = *req.CommissionRate
	}
	if req.CommissionAmount != nil {
		updates["commission_amount"] = *req.CommissionAmount
	}
	if req.Notes != nil {
		if *req.Notes == "" {
			updates["notes"] = nil
		} else {
			updates["notes"] = *req.Notes
		}
	}

	if len(updates) == 0 {
		return nil // No updates provided
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE transactions SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transaction.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to update transaction with id %s: %w", req.ID, err)
	}
	return nil
}
