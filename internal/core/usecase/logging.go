package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

// Logger は nil の場合に何も出力しない Logger を返します。
func Logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// LogFailure は *errp が非 nil の場合に操作の失敗を記録します。
// 業務上の拒否と呼び出し元のキャンセルは debug、リポジトリ等の想定外の失敗は error で出力します。
// defer から呼び出す前提のため、名前付き戻り値のアドレスを受け取ります。
func LogFailure(logger *zap.Logger, op string, errp *error, fields ...zap.Field) {
	if errp == nil || *errp == nil {
		return
	}
	err := *errp
	fields = append(fields, zap.String("op", op), zap.Error(err))
	if domainerr.IsRejection(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Debug("operation rejected", fields...)
		return
	}
	logger.Error("operation failed", fields...)
}
