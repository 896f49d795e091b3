// Package domainerr はコア全体で共有するエラー分類を定義します。
package domainerr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation は入力値が不正・範囲外の場合の分類です。
	ErrValidation = errors.New("validation error")
	// ErrConflict は一意性や状態の不変条件が既に他レコードで満たされている場合の分類です。
	ErrConflict = errors.New("conflict")
	// ErrAvailability はスケジュール上の重複が検出された場合の分類です。
	ErrAvailability = errors.New("availability conflict")
	// ErrInvalidTransition は状態遷移表に存在しない遷移の分類です。
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrNotFound は参照先エンティティが存在しない場合の分類です。
	ErrNotFound = errors.New("not found")
	// ErrForbidden は操作者に権限がない場合の分類です。
	ErrForbidden = errors.New("forbidden")
)

var kinds = []error{ErrValidation, ErrConflict, ErrAvailability, ErrInvalidTransition, ErrNotFound, ErrForbidden}

// IsRejection は err がいずれかの分類に属する業務上の拒否かを返します。
func IsRejection(err error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// New は分類 kind を包んだパッケージ固有のセンチネルエラーを生成します。
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// TransitionError は不正な状態遷移を現在状態と目標状態付きで表します。
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NewTransitionError は TransitionError を生成します。
func NewTransitionError[S ~string](entity string, from, to S) error {
	return &TransitionError{Entity: entity, From: string(from), To: string(to)}
}

// ConflictKind は重複した予定の種類です。
type ConflictKind string

const (
	ConflictKindShift       ConflictKind = "shift"
	ConflictKindTimeOff     ConflictKind = "time_off"
	ConflictKindUnavailable ConflictKind = "unavailable"
	ConflictKindAssignment  ConflictKind = "assignment"
)

// AvailabilityError は重複した既存レコードを識別できる形で保持します。
type AvailabilityError struct {
	EmployeeID    string
	Kind          ConflictKind
	ConflictingID string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("employee %s has a conflicting %s %s", e.EmployeeID, e.Kind, e.ConflictingID)
}

func (e *AvailabilityError) Unwrap() error { return ErrAvailability }
