package shift

import (
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// monthlyWindowDays は monthly テンプレートが生成対象とする月初からの日数です。
const monthlyWindowDays = 7

// ShouldGenerate はテンプレートが day にシフトを生成すべきかを返します。
// biweekly は ISO 週番号が偶数の週、monthly は各月の最初の 7 日間にある該当曜日のみ対象です。
func ShouldGenerate(t *Template, day time.Time) bool {
	if t == nil {
		return false
	}
	d := usecase.DateOf(day)
	if d.Weekday() != t.DayOfWeek {
		return false
	}
	if t.EffectiveStartDate != nil && d.Before(usecase.DateOf(*t.EffectiveStartDate)) {
		return false
	}
	if t.EffectiveEndDate != nil && d.After(usecase.DateOf(*t.EffectiveEndDate)) {
		return false
	}

	switch t.Recurrence {
	case RecurrenceWeekly:
		return true
	case RecurrenceBiweekly:
		_, week := d.ISOWeek()
		return week%2 == 0
	case RecurrenceMonthly:
		return d.Day() <= monthlyWindowDays
	default:
		return false
	}
}

// IsValidRecurrence は既知の繰り返し規則かを返します。
func IsValidRecurrence(r Recurrence) bool {
	return r == RecurrenceWeekly || r == RecurrenceBiweekly || r == RecurrenceMonthly
}
