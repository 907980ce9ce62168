package payroll

import "testing"

func TestGeneratePaymentRequestValidate(t *testing.T) {
	req := GeneratePaymentRequest{EmployeeID: "e1", PayrollPeriodID: "p1"}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := GeneratePaymentRequest{}
	if err := missing.Validate(); err == nil {
		t.Error("Validate() with missing IDs should fail")
	}

	badMethod := GeneratePaymentRequest{EmployeeID: "e1", PayrollPeriodID: "p1", PaymentMethod: "cash"}
	if err := badMethod.Validate(); err == nil {
		t.Error("Validate() with unknown payment method should fail")
	}
}

func TestGeneratePaymentRequestMethodDefault(t *testing.T) {
	req := GeneratePaymentRequest{EmployeeID: "e1", PayrollPeriodID: "p1"}
	if got := req.Method(); got != "direct_deposit" {
		t.Errorf("Method() = %q, want direct_deposit", got)
	}

	req.PaymentMethod = "wire_transfer"
	if got := req.Method(); got != "wire_transfer" {
		t.Errorf("Method() = %q, want wire_transfer", got)
	}
}
