// Package events はドメインイベントの配信アダプタです。
package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/event"
)

// Log はイベントを構造化ログとして出力します。
type Log struct {
	logger *zap.Logger
}

// NewLog は Log を生成します。
func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

// Dispatch は 1 イベントにつき 1 行を info で出力します。
func (l *Log) Dispatch(_ context.Context, events []event.Event) {
	for _, e := range events {
		l.logger.Info("domain event",
			zap.String("event", string(e.Name)),
			zap.String("event_id", e.ID),
			zap.String("aggregate_type", e.AggregateType),
			zap.String("aggregate_id", e.AggregateID),
			zap.String("actor_id", e.ActorID),
			zap.Time("occurred_at", e.OccurredAt),
			zap.Any("payload", e.Payload),
		)
	}
}

// Fanout は登録順にすべての Dispatcher へ同じイベントを渡します。
type Fanout []event.Dispatcher

// Dispatch は各 Dispatcher を順に呼び出します。
func (f Fanout) Dispatch(ctx context.Context, events []event.Event) {
	if len(events) == 0 {
		return
	}
	for _, d := range f {
		if d != nil {
			d.Dispatch(ctx, events)
		}
	}
}
