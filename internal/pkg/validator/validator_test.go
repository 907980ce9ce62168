package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-31"); !ok {
		t.Error("IsValidDate(2025-01-31) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "31-01-2025", "2025-01-31T00:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2025-01-15T09:30:00Z", "2025-01-15T09:30:00+07:00"}
	invalid := []string{"2025-01-15", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	if !IsValidAmount(0) || !IsValidAmount(100000) {
		t.Error("non-negative amounts must be valid")
	}
	if IsValidAmount(-1) {
		t.Error("negative amounts must be invalid")
	}
}

func TestIsValidRate(t *testing.T) {
	// Rates above 100% are allowed; only negatives are rejected.
	if !IsValidRate(0) || !IsValidRate(500) || !IsValidRate(12000) {
		t.Error("non-negative rates must be valid")
	}
	if IsValidRate(-500) {
		t.Error("negative rates must be invalid")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "completed", "cancelled"}
	if !IsInSlice("completed", slice) {
		t.Error("IsInSlice(completed) = false, want true")
	}
	if IsInSlice("reopened", slice) {
		t.Error("IsInSlice(reopened) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "sale_amount", Message: "must be non-negative"},
	}
	m := errs.ToMap()
	if m["email"] != "is required" || m["sale_amount"] != "must be non-negative" {
		t.Errorf("ToMap() = %v, unexpected contents", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should include field messages")
	}
}
