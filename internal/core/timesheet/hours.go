package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// ComputeHours は (勤務分 - 休憩分) / 60 を小数第 2 位に丸めて返します。
// 勤務分は打刻間隔を分単位に切り捨てた値で、秒は数えません。
func ComputeHours(clockIn, clockOut time.Time, breakMinutes int) (decimal.Decimal, error) {
	if !clockOut.After(clockIn) {
		return decimal.Zero, ErrClockOutBeforeIn
	}
	if breakMinutes < 0 {
		return decimal.Zero, ErrInvalidBreak
	}
	worked := int64(clockOut.Sub(clockIn)/time.Minute) - int64(breakMinutes)
	if worked < 0 {
		return decimal.Zero, ErrNegativeHours
	}
	return decimal.NewFromInt(worked).Div(minutesPerHour).Round(2), nil
}
