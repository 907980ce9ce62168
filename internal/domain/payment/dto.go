package payment

import "time"

// UpdatePaymentRequest carries partial updates to a payment's lifecycle
// fields. Monetary fields are never updated after creation.
type UpdatePaymentRequest struct {
	ID            string
	PaymentStatus *Status
	PaymentDate   *time.Time
}

type PaymentResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	PayrollPeriodID *string `json:"payroll_period_id,omitempty"`
	GrossAmount     int64   `json:"gross_amount"`
	FederalTax      int64   `json:"federal_tax"`
	StateTax        int64   `json:"state_tax"`
	LocalTax        int64   `json:"local_tax"`
	SocialSecurity  int64   `json:"social_security"`
	Medicare        int64   `json:"medicare"`
	NetAmount       int64   `json:"net_amount"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentDate     *string `json:"payment_date,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
