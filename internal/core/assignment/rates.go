package assignment

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Markup は合意単価と支払単価の差額と率です。
type Markup struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal
}

// ComputeMarkup はマークアップを算出します。
// 率は amount / pay × 100 を小数第 2 位で丸め、支払単価が 0 のときは 0 です。
func ComputeMarkup(agreed, pay decimal.Decimal) (Markup, error) {
	if agreed.IsNegative() || pay.IsNegative() {
		return Markup{}, ErrInvalidRate
	}
	if agreed.LessThan(pay) {
		return Markup{}, ErrAgreedBelowPay
	}
	amount := agreed.Sub(pay)
	if pay.IsZero() {
		return Markup{Amount: amount.Round(2), Percent: decimal.Zero}, nil
	}
	return Markup{
		Amount:  amount.Round(2),
		Percent: amount.Mul(hundred).DivRound(pay, 2),
	}, nil
}
