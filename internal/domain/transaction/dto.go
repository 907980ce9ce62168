package transaction

import (
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/pkg/validator"
)

type CreateTransactionRequest struct {
	EmployeeID      string  `json:"employee_id"`
	PropertyAddress string  `json:"property_address"`
	PropertyCity    *string `json:"property_city,omitempty"`
	PropertyState   *string `json:"property_state,omitempty"`
	PropertyZip     *string `json:"property_zip,omitempty"`
	SaleAmount      int64   `json:"sale_amount"`     // in cents
	CommissionRate  int64   `json:"commission_rate"` // percentage * 100
	TransactionDate string  `json:"transaction_date"` // RFC3339 or YYYY-MM-DD
	Notes           *string `json:"notes,omitempty"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PropertyAddress) {
		errs = append(errs, validator.ValidationError{Field: "property_address", Message: "is required"})
	}
	if !validator.IsValidAmount(r.SaleAmount) {
		errs = append(errs, validator.ValidationError{Field: "sale_amount", Message: "must be non-negative"})
	}
	if !validator.IsValidRate(r.CommissionRate) {
		errs = append(errs, validator.ValidationError{Field: "commission_rate", Message: "must be non-negative"})
	}
	if _, ok := parseTransactionDate(r.TransactionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "transaction_date", Message: "must be a date (YYYY-MM-DD) or RFC3339 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TransactionDateTime returns the parsed transaction date. Validate must have
// passed before calling.
func (r *CreateTransactionRequest) TransactionDateTime() time.Time {
	t, _ := parseTransactionDate(r.TransactionDate)
	return t
}

func parseTransactionDate(s string) (time.Time, bool) {
	if t, ok := validator.IsValidDateTime(s); ok {
		return t, true
	}
	return validator.IsValidDate(s)
}

type UpdateTransactionRequest struct {
	ID             string  `json:"-"`
	Status         *string `json:"status,omitempty"`
	SaleAmount     *int64  `json:"sale_amount,omitempty"`
	CommissionRate *int64  `json:"commission_rate,omitempty"`
	Notes          *string `json:"notes,omitempty"`

	// CommissionAmount is recomputed by the service when both SaleAmount and
	// CommissionRate are supplied; it is never set by callers.
	CommissionAmount *int64 `json:"-"`
}

func (r *UpdateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPending), string(StatusCompleted), string(StatusCancelled),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, completed, or cancelled"})
	}
	if r.SaleAmount != nil && !validator.IsValidAmount(*r.SaleAmount) {
		errs = append(errs, validator.ValidationError{Field: "sale_amount", Message: "must be non-negative"})
	}
	if r.CommissionRate != nil && !validator.IsValidRate(*r.CommissionRate) {
		errs = append(errs, validator.ValidationError{Field: "commission_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	PropertyAddress  string  `json:"property_address"`
	PropertyCity     *string `json:"property_city,omitempty"`
	PropertyState    *string `json:"property_state,omitempty"`
	PropertyZip      *string `json:"property_zip,omitempty"`
	SaleAmount       int64   `json:"sale_amount"`
	CommissionRate   int64   `json:"commission_rate"`
	CommissionAmount int64   `json:"commission_amount"`
	TransactionDate  string  `json:"transaction_date"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes,omitempty"`
}
