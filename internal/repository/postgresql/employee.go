package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, first_name, last_name, email, phone, address, city, state,
		zip_code, base_commission_rate, employment_status, tax_id, bank_account,
		bank_routing_number, hire_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.Address,
		&e.City,
		&e.State,
		&e.ZipCode,
		&e.BaseCommissionRate,
		&e.EmploymentStatus,
		&e.TaxID,
		&e.BankAccount,
		&e.BankRoutingNumber,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, first_name, last_name, email, phone, address, city,
			state, zip_code, base_commission_rate, employment_status, tax_id, bank_account,
			bank_routing_number, hire_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Address,
		newEmployee.City,
		newEmployee.State,
		newEmployee.ZipCode,
		newEmployee.BaseCommissionRate,
		newEmployee.EmploymentStatus,
		newEmployee.TaxID,
		newEmployee.BankAccount,
		newEmployee.BankRoutingNumber,
		newEmployee.HireDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.FirstName != nil && *req.FirstName != "" {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			updates["phone"] = nil
		} else {
			updates["phone"] = *req.Phone
		}
	}
	if req.Address != nil {
		if *req.Address == "" {
			updates["address"] = nil
		} else {
			updates["address"] = *req.Address
		}
	}
	if req.City != nil {
		if *req.City == "" {
			updates["city"] = nil
		} else {
			updates["city"] = *req.City
		}
	}
	if req.State != nil {
		if *req.State == "" {
			updates["state"] = nil
		} else {
			updates["state"] = *req.State
		}
	}
	if req.ZipCode != nil {
		if *req.ZipCode == "" {
			updates["zip_code"] = nil
		} else {
			updates["zip_code"] = *req.ZipCode
		}
	}
	if req.BaseCommissionRate != nil {
		updates["base_commission_rate"] = *req.BaseCommissionRate
	}
	if req.EmploymentStatus != nil && *req.EmploymentStatus != "" {
		updates["employment_status"] = *req.EmploymentStatus
	}
	if req.TaxID != nil {
		if *req.TaxID == "" {
			updates["tax_id"] = nil
		} else {
			updates["tax_id"] = *req.TaxID
		}
	}
	if req.BankAccount != nil {
		if *req.BankAccount == "" {
			updates["bank_account"] = nil
		} else {
			updates["bank_account"] = *req.BankAccount
		}
	}
	if req.BankRoutingNumber != nil {
		if *req.BankRoutingNumber == "" {
			updates["bank_routing_number"] = nil
		} else {
			updates["bank_routing_number"] = *req.BankRoutingNumber
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

	sql := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}
	return nil
}
