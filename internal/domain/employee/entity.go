package employee

import "time"

type Employee struct {
	ID                 string
	UserID             *string
	FirstName          string
	LastName           string
	Email              string
	Phone              *string
	Address            *string
	City               *string
	State              *string
	ZipCode            *string
	BaseCommissionRate int64 // percentage * 100 (500 = 5.00%)
	EmploymentStatus   EmploymentStatus
	TaxID              *string
	BankAccount        *string
	BankRoutingNumber  *string
	HireDate           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive    EmploymentStatus = "active"
	EmploymentStatusInactive  EmploymentStatus = "inactive"
	EmploymentStatusSuspended EmploymentStatus = "suspended"
)

// FullName returns the display name used on payment records and reports.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
