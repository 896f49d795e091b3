package assignment

import (
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

const noteTimeLayout = "2006-01-02 15:04:05"

var transitions = map[Status][]Status{
	StatusPending:   {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusSuspended, StatusCancelled},
	StatusSuspended: {StatusActive, StatusCancelled},
}

// CanTransition は遷移表に from → to が存在するかを返します。completed と cancelled は終端です。
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsValidStatus はステータスが既知の値かを返します。
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled, StatusSuspended:
		return true
	default:
		return false
	}
}

// Transition は a の状態を to に変更し、履歴を Notes に追記します。
// 不正な遷移では a を変更せず TransitionError を返します。
func Transition(a *Assignment, to Status, reason string, at time.Time) error {
	if !CanTransition(a.Status, to) {
		return domainerr.NewTransitionError("assignment", a.Status, to)
	}
	note := fmt.Sprintf("[%s] status changed from %s to %s", at.UTC().Format(noteTimeLayout), a.Status, to)
	if r := strings.TrimSpace(reason); r != "" {
		note += ": " + r
	}
	a.Notes = appendNote(a.Notes, note)
	a.Status = to
	a.UpdatedAt = at
	return nil
}

func appendNote(notes, line string) string {
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
