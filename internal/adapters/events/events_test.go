package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ogurasousui/staffing-engine/internal/core/event"
)

type fakeStream struct {
	mu      sync.Mutex
	args    []*goredis.XAddArgs
	err     error
	release chan struct{}
}

func (f *fakeStream) XAdd(ctx context.Context, a *goredis.XAddArgs) *goredis.StringCmd {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	f.args = append(f.args, a)
	f.mu.Unlock()
	cmd := goredis.NewStringCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal("1700000000000-0")
	return cmd
}

type recordingDispatcher struct {
	got []event.Event
}

func (r *recordingDispatcher) Dispatch(_ context.Context, events []event.Event) {
	r.got = append(r.got, events...)
}

func sampleEvent() event.Event {
	at := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	return event.New(event.TimesheetEmployerOK, "timesheet", "ts-1", "user-1", at, map[string]string{"hours": "7.50"})
}

func TestRedisStream_Dispatch(t *testing.T) {
	t.Parallel()

	stream := &fakeStream{}
	d := NewRedisStream(stream, "staffing.events", nil)

	e := sampleEvent()
	d.Dispatch(context.Background(), []event.Event{e})
	d.Close()

	if len(stream.args) != 1 {
		t.Fatalf("expected 1 XADD, got %d", len(stream.args))
	}
	args := stream.args[0]
	if args.Stream != "staffing.events" || !args.Approx || args.MaxLen != defaultStreamMaxLen {
		t.Fatalf("unexpected XADD args: %+v", args)
	}
	values, ok := args.Values.(map[string]any)
	if !ok {
		t.Fatalf("unexpected values type %T", args.Values)
	}
	if values["name"] != "timesheet.employer_approved" || values["payload.hours"] != "7.50" {
		t.Fatalf("unexpected values: %v", values)
	}
	if values["occurred_at"] != "2026-03-02T17:00:00Z" {
		t.Fatalf("unexpected occurred_at: %v", values["occurred_at"])
	}
}

func TestRedisStream_DispatchLogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	stream := &fakeStream{err: errors.New("connection refused")}
	d := NewRedisStream(stream, "staffing.events", zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Dispatch(ctx, []event.Event{sampleEvent(), sampleEvent()})
	d.Close()

	if len(stream.args) != 2 {
		t.Fatalf("expected every event to be attempted, got %d", len(stream.args))
	}
	if logs.FilterMessage("failed to publish event").Len() != 2 {
		t.Fatalf("expected 2 warnings, got %d", logs.Len())
	}
}

func TestRedisStream_DispatchDoesNotWaitForRedis(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	stream := &fakeStream{release: make(chan struct{})}
	d := NewRedisStream(stream, "staffing.events", zap.New(core), WithQueueSize(1))

	const batches = 5
	returned := make(chan struct{})
	go func() {
		for range batches {
			d.Dispatch(context.Background(), []event.Event{sampleEvent()})
		}
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatalf("Dispatch blocked on a slow stream")
	}

	dropped := logs.FilterMessage("event queue full, dropping events").Len()
	if dropped < batches-2 {
		t.Fatalf("expected at least %d dropped batches, got %d", batches-2, dropped)
	}

	close(stream.release)
	d.Close()
	if got := len(stream.args); got+dropped != batches {
		t.Fatalf("expected %d published + dropped, got %d + %d", batches, got, dropped)
	}

	d.Dispatch(context.Background(), []event.Event{sampleEvent()})
	if logs.FilterMessage("event stream closed, dropping events").Len() != 1 {
		t.Fatalf("expected dispatch after close to be dropped")
	}
}

func TestLog_Dispatch(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	NewLog(zap.New(core)).Dispatch(context.Background(), []event.Event{sampleEvent()})

	entries := logs.FilterMessage("domain event").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["event"]; got != "timesheet.employer_approved" {
		t.Fatalf("unexpected event field: %v", got)
	}
}

func TestFanout_Dispatch(t *testing.T) {
	t.Parallel()

	first := &recordingDispatcher{}
	second := &recordingDispatcher{}
	Fanout{first, nil, second}.Dispatch(context.Background(), []event.Event{sampleEvent()})

	if len(first.got) != 1 || len(second.got) != 1 {
		t.Fatalf("expected both dispatchers to receive the event: %d %d", len(first.got), len(second.got))
	}

	empty := &recordingDispatcher{}
	Fanout{empty}.Dispatch(context.Background(), nil)
	if len(empty.got) != 0 {
		t.Fatalf("expected no dispatch for empty batch")
	}
}
