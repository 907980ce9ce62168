package response

import (
	"errors"
	"net/http"

	"github.com/brokerpay/payroll-backend-go/internal/domain/auth"
	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/domain/payment"
	"github.com/brokerpay/payroll-backend-go/internal/domain/period"
	"github.com/brokerpay/payroll-backend-go/internal/domain/transaction"
	"github.com/brokerpay/payroll-backend-go/internal/domain/user"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailUnverified):
		Forbidden(w, "OAuth account email is not verified")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered for another employee")

	// Transaction domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")

	// Payroll period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
