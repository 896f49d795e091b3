package usecase

import (
	"fmt"
	"iter"
	"time"
)

// DateLayout は日付の表記です。
const DateLayout = "2006-01-02"

// TimeOfDay は 0 時からの経過分で表す時刻です。
type TimeOfDay int

// ParseTimeOfDay は "HH:MM" を解析します。
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", raw)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String は "HH:MM" 表記を返します。
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid は 00:00〜23:59 の範囲かを返します。
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < 24*60
}

// On は日付 day にこの時刻を適用した時点を返します。
func (t TimeOfDay) On(day time.Time) time.Time {
	d := DateOf(day)
	return d.Add(time.Duration(t) * time.Minute)
}

// Window は day における [start, end) を返します。end が start 以前の場合は翌日に跨ぐ夜勤として扱います。
func Window(day time.Time, start, end TimeOfDay) (time.Time, time.Time) {
	s := start.On(day)
	e := end.On(day)
	if !e.After(s) {
		e = e.AddDate(0, 0, 1)
	}
	return s, e
}

// DateOf は UTC の日付部分のみを返します。
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps は半開区間 [aStart, aEnd) と [bStart, bEnd) が重なるかを返します。端点の接触は重複としません。
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DateRangesOverlap は日付単位の閉区間が重なるかを返します。
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	as, ae := DateOf(aStart), DateOf(aEnd)
	bs, be := DateOf(bStart), DateOf(bEnd)
	return !as.After(be) && !bs.After(ae)
}

// Days は start から end までの各日付（両端含む）を順に yield します。
func Days(start, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		last := DateOf(end)
		for d := DateOf(start); !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}
