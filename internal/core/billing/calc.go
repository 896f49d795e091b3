package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Plan はタイムシート 1 件から起こす請求と給与の金額です。
type Plan struct {
	EmployerInvoice Invoice
	PlatformInvoice *Invoice
	Payroll         Payroll
}

// Compute は精算額を計算します。金額はすべて小数第 2 位に丸めます。
// プラットフォーム手数料はマークアップ額 × 時間の feePercent % で、0 の場合は請求を起こしません。
func Compute(src Source, feePercent decimal.Decimal) (Plan, error) {
	if src.Hours.IsNegative() {
		return Plan{}, ErrInvalidHours
	}
	if src.AgreedRate.IsNegative() || src.PayRate.IsNegative() || src.MarkupAmount.IsNegative() {
		return Plan{}, ErrInvalidRate
	}
	if feePercent.IsNegative() || feePercent.GreaterThan(hundred) {
		return Plan{}, ErrInvalidFeePercent
	}

	plan := Plan{
		EmployerInvoice: Invoice{
			TimesheetID: src.TimesheetID,
			From:        Employer(src.EmployerID),
			To:          Agency(src.AgencyID),
			Hours:       src.Hours,
			Rate:        src.AgreedRate,
			Amount:      src.AgreedRate.Mul(src.Hours).Round(2),
			Status:      InvoicePending,
		},
		Payroll: Payroll{
			TimesheetID: src.TimesheetID,
			AgencyID:    src.AgencyID,
			EmployeeID:  src.EmployeeID,
			Hours:       src.Hours,
			PayRate:     src.PayRate,
			GrossAmount: src.PayRate.Mul(src.Hours).Round(2),
			Status:      PayrollPending,
		},
	}

	if feePercent.IsPositive() {
		perHour := src.MarkupAmount.Mul(feePercent).Div(hundred)
		plan.PlatformInvoice = &Invoice{
			TimesheetID: src.TimesheetID,
			From:        Agency(src.AgencyID),
			To:          Platform(),
			Hours:       src.Hours,
			Rate:        perHour.Round(2),
			Amount:      perHour.Mul(src.Hours).Round(2),
			Status:      InvoicePending,
		}
	}
	return plan, nil
}
