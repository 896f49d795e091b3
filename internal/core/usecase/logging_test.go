package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

func TestLogFailure_Levels(t *testing.T) {
	t.Parallel()

	errRejected := domainerr.New(domainerr.ErrConflict, "contract: already exists")
	tests := []struct {
		name  string
		err   error
		level zapcore.Level
		msg   string
	}{
		{"rejection", fmt.Errorf("create: %w", errRejected), zapcore.DebugLevel, "operation rejected"},
		{"cancelled", context.Canceled, zapcore.DebugLevel, "operation rejected"},
		{"repository failure", errors.New("insert contract: connection reset"), zapcore.ErrorLevel, "operation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.DebugLevel)
			err := tt.err
			LogFailure(zap.New(core), "CreateContract", &err, zap.String("agency_id", "agency-1"))

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			entry := entries[0]
			if entry.Level != tt.level || entry.Message != tt.msg {
				t.Fatalf("unexpected entry: %v %q", entry.Level, entry.Message)
			}
			fields := entry.ContextMap()
			if fields["op"] != "CreateContract" || fields["agency_id"] != "agency-1" {
				t.Fatalf("unexpected fields: %v", fields)
			}
		})
	}
}

func TestLogFailure_NoError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var err error
	LogFailure(zap.New(core), "GetContract", &err)
	LogFailure(zap.New(core), "GetContract", nil)
	if logs.Len() != 0 {
		t.Fatalf("expected no entries, got %d", logs.Len())
	}
}

func TestLogger_NilIsNop(t *testing.T) {
	t.Parallel()

	if Logger(nil) == nil {
		t.Fatal("expected a non-nil logger")
	}
	l := zap.NewExample()
	if Logger(l) != l {
		t.Fatal("expected the given logger to be returned")
	}
}
