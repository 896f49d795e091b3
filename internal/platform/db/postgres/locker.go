package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ErrLockOutsideTransaction はトランザクション外でロックを取ろうとした場合のエラーです。
var ErrLockOutsideTransaction = errors.New("postgres: advisory lock requires a transaction")

// AdvisoryLocker は pg_advisory_xact_lock で社員単位の書き込みを直列化します。
// ロックはトランザクション終了時に解放されます。
type AdvisoryLocker struct {
	pool Queryer
}

// NewAdvisoryLocker は AdvisoryLocker を生成します。
func NewAdvisoryLocker(pool Queryer) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool}
}

// LockEmployee は社員 ID をキーにしたトランザクションロックを取得します。
func (l *AdvisoryLocker) LockEmployee(ctx context.Context, employeeID string) error {
	if !InTransaction(ctx) {
		return ErrLockOutsideTransaction
	}
	exec := QueryerFromContext(ctx, l.pool)
	if _, err := exec.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('employee:' || $1, 0))`, employeeID); err != nil {
		return fmt.Errorf("postgres: lock employee %s: %w", employeeID, err)
	}
	return nil
}
