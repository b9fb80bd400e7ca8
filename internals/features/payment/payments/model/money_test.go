package model

import "testing"

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name      string
		netCents  int64
		rate      float64
		wantTax   int64
		wantGross int64
	}{
		{name: "drop-in 100.00 SAR at 15%", netCents: 10000, rate: 15, wantTax: 1500, wantGross: 11500},
		{name: "zero net", netCents: 0, rate: 15, wantTax: 0, wantGross: 0},
		{name: "zero rate", netCents: 9900, rate: 0, wantTax: 0, wantGross: 9900},
		{name: "rounds half up", netCents: 105, rate: 15, wantTax: 16, wantGross: 121},
		{name: "exact half rounds up", netCents: 50, rate: 5, wantTax: 3, wantGross: 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePrice(tt.netCents, "SAR", tt.rate)
			if p.Net.AmountCents != tt.netCents {
				t.Fatalf("expected net %d, got %d", tt.netCents, p.Net.AmountCents)
			}
			if p.Tax.AmountCents != tt.wantTax {
				t.Fatalf("expected tax %d, got %d", tt.wantTax, p.Tax.AmountCents)
			}
			if p.Gross.AmountCents != tt.wantGross {
				t.Fatalf("expected gross %d, got %d", tt.wantGross, p.Gross.AmountCents)
			}
			if p.Gross.AmountCents != p.Net.AmountCents+p.Tax.AmountCents {
				t.Fatalf("net+tax != gross: %d+%d != %d", p.Net.AmountCents, p.Tax.AmountCents, p.Gross.AmountCents)
			}
		})
	}
}

func TestMoneyAmount(t *testing.T) {
	m := NewMoney(11500, "SAR")
	if m.Amount() != 115.00 {
		t.Fatalf("expected 115.00, got %v", m.Amount())
	}
	if m.IsZero() {
		t.Fatal("expected non-zero")
	}
	if !NewMoney(0, "SAR").IsZero() {
		t.Fatal("expected zero")
	}
}
