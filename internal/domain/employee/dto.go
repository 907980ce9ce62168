package employee

import (
	"github.com/brokerpay/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	ZipCode            *string `json:"zip_code,omitempty"`
	BaseCommissionRate *int64  `json:"base_commission_rate,omitempty"` // defaults to 500 (5%)
	TaxID              *string `json:"tax_id,omitempty"`
	BankAccount        *string `json:"bank_account,omitempty"`
	BankRoutingNumber  *string `json:"bank_routing_number,omitempty"`
	HireDate           *string `json:"hire_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid address"})
	}
	if r.BaseCommissionRate != nil && !validator.IsValidRate(*r.BaseCommissionRate) {
		errs = append(errs, validator.ValidationError{Field: "base_commission_rate", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string  `json:"-"`
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	ZipCode            *string `json:"zip_code,omitempty"`
	BaseCommissionRate *int64  `json:"base_commission_rate,omitempty"`
	EmploymentStatus   *string `json:"employment_status,omitempty"`
	TaxID              *string `json:"tax_id,omitempty"`
	BankAccount        *string `json:"bank_account,omitempty"`
	BankRoutingNumber  *string `json:"bank_routing_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid address"})
	}
	if r.BaseCommissionRate != nil && !validator.IsValidRate(*r.BaseCommissionRate) {
		errs = append(errs, validator.ValidationError{Field: "base_commission_rate", Message: "must be non-negative"})
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, []string{
		string(EmploymentStatusActive), string(EmploymentStatusInactive), string(EmploymentStatusSuspended),
	}) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be active, inactive, or suspended"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                 string  `json:"id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	ZipCode            *string `json:"zip_code,omitempty"`
	BaseCommissionRate int64   `json:"base_commission_rate"`
	EmploymentStatus   string  `json:"employment_status"`
	HireDate           *string `json:"hire_date,omitempty"`
}
