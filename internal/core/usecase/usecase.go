// Package usecase は各ユースケースパッケージが共有する抽象（時計・トランザクション・ロック）を定義します。
package usecase

import (
	"context"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// RealClock は UTC の現在時刻を返す Clock です。
func RealClock() Clock { return realClock{} }

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// NoopTransactionManager はトランザクションを張らずに fn を実行します。
func NoopTransactionManager() TransactionManager { return noopTransactionManager{} }

// EmployeeLocker は社員単位でスケジュール書き込みを直列化します。
// 実装はトランザクション終了まで保持されるロックを取得しなければなりません。
type EmployeeLocker interface {
	LockEmployee(ctx context.Context, employeeID string) error
}

type noopLocker struct{}

func (noopLocker) LockEmployee(context.Context, string) error { return nil }

// NoopEmployeeLocker は何もしない EmployeeLocker です。
func NoopEmployeeLocker() EmployeeLocker { return noopLocker{} }

// Defaults は nil の依存をデフォルト実装で埋めます。
func Defaults(clock Clock, tx TransactionManager, locker EmployeeLocker) (Clock, TransactionManager, EmployeeLocker) {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if locker == nil {
		locker = noopLocker{}
	}
	return clock, tx, locker
}
