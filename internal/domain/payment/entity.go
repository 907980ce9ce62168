package payment

import "time"

// Payment is an immutable record of one payroll disbursement. Monetary fields
// are fixed at creation; only the status and payment date change afterwards.
type Payment struct {
	ID              string
	EmployeeID      string
	PayrollPeriodID *string
	GrossAmount     int64 // in cents
	FederalTax      int64
	StateTax        int64
	LocalTax        int64
	SocialSecurity  int64
	Medicare        int64
	NetAmount       int64 // in cents
	PaymentMethod   Method
	PaymentStatus   Status
	PaymentDate     *time.Time // set only when processed
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Method string

const (
	MethodDirectDeposit Method = "direct_deposit"
	MethodCheck         Method = "check"
	MethodWireTransfer  Method = "wire_transfer"
)

// IsValidMethod reports whether s names a known payment method.
func IsValidMethod(s string) bool {
	switch Method(s) {
	case MethodDirectDeposit, MethodCheck, MethodWireTransfer:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)
