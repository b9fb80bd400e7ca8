// file: internals/features/payment/payments/model/money.go
package model

import "math"

/* ======================================================
   Money: nilai uang dalam cents + currency.
   Semua perhitungan harga harus menghasilkan net/tax/gross
   yang konsisten: gross = net + tax, dibulatkan half-up
   ke 2 desimal (cents).
====================================================== */

type Money struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

func NewMoney(cents int64, currency string) Money {
	return Money{AmountCents: cents, Currency: currency}
}

func (m Money) IsZero() bool {
	return m.AmountCents == 0
}

// Amount: nilai desimal (untuk display/gateway), 2 desimal.
func (m Money) Amount() float64 {
	return float64(m.AmountCents) / 100
}

type PriceBreakdown struct {
	Net            Money   `json:"net"`
	Tax            Money   `json:"tax"`
	Gross          Money   `json:"gross"`
	TaxRatePercent float64 `json:"tax_rate_percent"`
}

// ComputePrice menghitung gross = net × (1 + rate/100), half-up ke cents.
// Tax diturunkan dari gross - net supaya tiga angka selalu konsisten.
func ComputePrice(netCents int64, currency string, taxRatePercent float64) PriceBreakdown {
	grossCents := roundHalfUp(float64(netCents) * (1 + taxRatePercent/100))
	return PriceBreakdown{
		Net:            NewMoney(netCents, currency),
		Tax:            NewMoney(grossCents-netCents, currency),
		Gross:          NewMoney(grossCents, currency),
		TaxRatePercent: taxRatePercent,
	}
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
