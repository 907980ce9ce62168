package transaction

import "time"

// Transaction records a property sale and the commission snapshot taken at
// creation time. CommissionAmount is stored once and never re-derived unless
// both the sale amount and rate are changed together.
type Transaction struct {
	ID               string
	EmployeeID       string
	PropertyAddress  string
	PropertyCity     *string
	PropertyState    *string
	PropertyZip      *string
	SaleAmount       int64 // in cents
	CommissionRate   int64 // percentage * 100
	CommissionAmount int64 // in cents, snapshot at creation
	TransactionDate  time.Time
	Status           Status
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)
