package events

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/event"
)

const (
	defaultPublishTimeout = 3 * time.Second
	defaultStreamMaxLen   = 100000
	defaultQueueSize      = 1024
)

// StreamAdder は XADD を発行できる Redis クライアントです。
type StreamAdder interface {
	XAdd(ctx context.Context, a *goredis.XAddArgs) *goredis.StringCmd
}

// RedisStream はイベントを Redis Stream へ 1 件ずつ追記します。
// Dispatch はキューに積むだけで、XADD はバックグラウンドの 1 本の goroutine が行います。
// キューが満杯ならそのバッチは破棄し、失敗はログに残すだけで呼び出し元へは返しません。
type RedisStream struct {
	client  StreamAdder
	stream  string
	maxLen  int64
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan []event.Event
	done   chan struct{}
}

// RedisStreamOption は RedisStream の設定です。
type RedisStreamOption func(*RedisStream)

// WithQueueSize は未送信バッチの上限を変更します。
func WithQueueSize(n int) RedisStreamOption {
	return func(r *RedisStream) {
		if n > 0 {
			r.queue = make(chan []event.Event, n)
		}
	}
}

// WithPublishTimeout は 1 バッチあたりの XADD のタイムアウトを変更します。
func WithPublishTimeout(d time.Duration) RedisStreamOption {
	return func(r *RedisStream) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewRedisStream は RedisStream を生成し、送信用の goroutine を起動します。停止は Close です。
func NewRedisStream(client StreamAdder, stream string, logger *zap.Logger, opts ...RedisStreamOption) *RedisStream {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &RedisStream{
		client:  client,
		stream:  stream,
		maxLen:  defaultStreamMaxLen,
		timeout: defaultPublishTimeout,
		logger:  logger,
		queue:   make(chan []event.Event, defaultQueueSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.run()
	return r
}

// Dispatch はイベントをキューに積みます。ブロックしません。
func (r *RedisStream) Dispatch(_ context.Context, events []event.Event) {
	if len(events) == 0 {
		return
	}
	batch := append([]event.Event(nil), events...)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.logger.Warn("event stream closed, dropping events", zap.Int("events", len(batch)))
		return
	}
	select {
	case r.queue <- batch:
	default:
		r.logger.Warn("event queue full, dropping events",
			zap.String("stream", r.stream),
			zap.Int("events", len(batch)),
		)
	}
}

// Close は新規の受付を止め、キューに残ったバッチを送り終えるまで待ちます。
func (r *RedisStream) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.done
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()
	<-r.done
}

func (r *RedisStream) run() {
	defer close(r.done)
	for batch := range r.queue {
		r.publish(batch)
	}
}

func (r *RedisStream) publish(events []event.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	for _, e := range events {
		id, err := r.client.XAdd(ctx, &goredis.XAddArgs{
			Stream: r.stream,
			MaxLen: r.maxLen,
			Approx: true,
			Values: streamValues(e),
		}).Result()
		if err != nil {
			r.logger.Warn("failed to publish event",
				zap.String("stream", r.stream),
				zap.String("event", string(e.Name)),
				zap.String("event_id", e.ID),
				zap.Error(err),
			)
			continue
		}
		r.logger.Debug("event published", zap.String("event", string(e.Name)), zap.String("stream_id", id))
	}
}

func streamValues(e event.Event) map[string]any {
	values := map[string]any{
		"id":             e.ID,
		"name":           string(e.Name),
		"aggregate_type": e.AggregateType,
		"aggregate_id":   e.AggregateID,
		"actor_id":       e.ActorID,
		"occurred_at":    e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	for k, v := range e.Payload {
		values["payload."+k] = v
	}
	return values
}
