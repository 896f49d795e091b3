package handler

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
)

func TestUnaryLoggingInterceptor(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := UnaryLoggingInterceptor(zap.New(core))
	info := &grpc.UnaryServerInfo{FullMethod: staffingv1.StaffingService_ClockIn_FullMethodName}

	tests := []struct {
		err  error
		want zapcore.Level
	}{
		{err: nil, want: zapcore.InfoLevel},
		{err: status.Error(codes.NotFound, "missing"), want: zapcore.WarnLevel},
		{err: status.Error(codes.Internal, "boom"), want: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		_, _ = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, tt.err
		})
	}

	entries := logs.All()
	if len(entries) != len(tests) {
		t.Fatalf("expected %d entries, got %d", len(tests), len(entries))
	}
	for i, tt := range tests {
		if entries[i].Level != tt.want {
			t.Errorf("entry %d: expected %v, got %v", i, tt.want, entries[i].Level)
		}
		if entries[i].ContextMap()["method"] != info.FullMethod {
			t.Errorf("entry %d: missing method field", i)
		}
	}
}
