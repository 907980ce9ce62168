package payroll

import "testing"

func TestCalculateCommission(t *testing.T) {
	cases := []struct {
		name       string
		saleAmount int64
		rate       int64
		want       int64
	}{
		{"five percent of 500k", 50000000, 500, 2500000},
		{"four percent of 250k", 25000000, 400, 1000000},
		{"zero sale", 0, 500, 0},
		{"zero rate", 50000000, 0, 0},
		{"rounds half up", 999, 500, 50},    // 49.95 cents
		{"rounds down below half", 989, 500, 49}, // 49.45 cents
		{"three and a quarter percent", 1000000, 325, 32500},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateCommission(c.saleAmount, c.rate)
			if got != c.want {
				t.Errorf("CalculateCommission(%d, %d) = %d, want %d", c.saleAmount, c.rate, got, c.want)
			}
		})
	}
}

func TestWithholdingsForDefaultRates(t *testing.T) {
	w := WithholdingsFor(100000, DefaultTaxRates)

	if w.FederalTax != 12000 {
		t.Errorf("FederalTax = %d, want 12000", w.FederalTax)
	}
	if w.StateTax != 0 {
		t.Errorf("StateTax = %d, want 0", w.StateTax)
	}
	if w.LocalTax != 0 {
		t.Errorf("LocalTax = %d, want 0", w.LocalTax)
	}
	if w.SocialSecurity != 6200 {
		t.Errorf("SocialSecurity = %d, want 6200", w.SocialSecurity)
	}
	if w.Medicare != 1450 {
		t.Errorf("Medicare = %d, want 1450", w.Medicare)
	}
	if w.Total() != 19650 {
		t.Errorf("Total() = %d, want 19650", w.Total())
	}
}

func TestWithholdingsForZeroGross(t *testing.T) {
	w := WithholdingsFor(0, DefaultTaxRates)
	if w.Total() != 0 {
		t.Errorf("Total() = %d, want 0", w.Total())
	}
}

func TestNetPayFrom(t *testing.T) {
	w := WithholdingsFor(100000, DefaultTaxRates)
	net := NetPayFrom(100000, w)
	if net != 80350 {
		t.Errorf("NetPayFrom = %d, want 80350", net)
	}
}

func TestNetPayClampedAtZero(t *testing.T) {
	// Rates configured past 100%: net pay must floor at zero, never go
	// negative.
	rates := TaxRates{
		Federal:        9000,
		State:          2000,
		Local:          500,
		SocialSecurity: 620,
		Medicare:       145,
	}
	w := WithholdingsFor(100000, rates)
	if w.Total() <= 100000 {
		t.Fatalf("test premise broken: total withholdings %d should exceed gross", w.Total())
	}

	net := NetPayFrom(100000, w)
	if net != 0 {
		t.Errorf("NetPayFrom = %d, want 0", net)
	}
}

func TestNetPayNeverExceedsGross(t *testing.T) {
	for _, gross := range []int64{1, 99, 100000, 123456789} {
		w := WithholdingsFor(gross, DefaultTaxRates)
		net := NetPayFrom(gross, w)
		if net < 0 || net > gross {
			t.Errorf("NetPayFrom(%d) = %d, out of [0, gross]", gross, net)
		}
	}
}
