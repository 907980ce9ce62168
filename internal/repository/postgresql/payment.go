package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/payment"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `id, employee_id, payroll_period_id, gross_amount, federal_tax, state_tax,
		local_tax, social_security, medicare, net_amount, payment_method, payment_status,
		payment_date, notes, created_at, updated_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.PayrollPeriodID,
		&p.GrossAmount,
		&p.FederalTax,
		&p.StateTax,
		&p.LocalTax,
		&p.SocialSecurity,
		&p.Medicare,
		&p.NetAmount,
		&p.PaymentMethod,
		&p.PaymentStatus,
		&p.PaymentDate,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment with id %s: %w", id, err)
	}
	return p, nil
}

// List implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) List(ctx context.Context, employeeID *string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments`
	args := []interface{}{}
	if employeeID != nil {
		query += ` WHERE employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ListByPeriod implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByPeriod(ctx context.Context, payrollPeriodID string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payroll_period_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, payrollPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for period %s: %w", payrollPeriodID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]payment.Payment, error) {
	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, newPayment payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	if newPayment.ID == "" {
		newPayment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payments (id, employee_id, payroll_period_id, gross_amount, federal_tax,
			state_tax, local_tax, social_security, medicare, net_amount, payment_method,
			payment_status, payment_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING ` + paymentColumns

	p, err := scanPayment(q.QueryRow(ctx, query,
		newPayment.ID,
		newPayment.EmployeeID,
		newPayment.PayrollPeriodID,
		newPayment.GrossAmount,
		newPayment.FederalTax,
		newPayment.StateTax,
		newPayment.LocalTax,
		newPayment.SocialSecurity,
		newPayment.Medicare,
		newPayment.NetAmount,
		newPayment.PaymentMethod,
		newPayment.PaymentStatus,
		newPayment.PaymentDate,
		newPayment.Notes,
	))
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return p, nil
}

// Update implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Update(ctx context.Context, req payment.UpdatePaymentRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.PaymentDate != nil {
		updates["payment_date"] = *req.PaymentDate
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

	sql := fmt.Sprintf("UPDATE payments SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update payment with id %s: %w", req.ID, err)
	}
	return nil
}
