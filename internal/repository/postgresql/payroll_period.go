package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/period"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollPeriodRepositoryImpl struct {
	db *database.DB
}

func NewPayrollPeriodRepository(db *database.DB) period.PayrollPeriodRepository {
	return &payrollPeriodRepositoryImpl{db: db}
}

const periodColumns = `id, name, start_date, end_date, status, created_at, updated_at`

func scanPeriod(row pgx.Row) (period.PayrollPeriod, error) {
	var p period.PayrollPeriod
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// GetByID implements period.PayrollPeriodRepository.
func (r *payrollPeriodRepositoryImpl) GetByID(ctx context.Context, id string) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.PayrollPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayrollPeriod{}, fmt.Errorf("failed to get payroll period with id %s: %w", id, err)
	}
	return p, nil
}

// List implements period.PayrollPeriodRepository.
func (r *payrollPeriodRepositoryImpl) List(ctx context.Context) ([]period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []period.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// Create implements period.PayrollPeriodRepository.
func (r *payrollPeriodRepositoryImpl) Create(ctx context.Context, newPeriod period.PayrollPeriod) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, name, start_date, end_date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + periodColumns

	p, err := scanPeriod(q.QueryRow(ctx, query,
		newPeriod.Name,
		newPeriod.StartDate,
		newPeriod.EndDate,
		newPeriod.Status,
	))
	if err != nil {
		return period.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}
	return p, nil
}

// Update implements period.PayrollPeriodRepository.
func (r *payrollPeriodRepositoryImpl) Update(ctx context.Context, req period.UpdatePayrollPeriodRequest) error {
	q := GetQuerier(ctx, r.db)

	if req.Status == nil {
		return nil // No updates provided
	}

	query := `UPDATE payroll_periods SET status = $1, updated_at = $2 WHERE id = $3 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, *req.Status, time.Now(), req.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to update payroll period with id %s: %w", req.ID, err)
	}
	return nil
}
