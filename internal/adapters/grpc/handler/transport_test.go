package handler

import (
	"context"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/actor"
)

func startBufServer(t *testing.T, srv staffingv1.StaffingServiceServer, auth *Authenticator) staffingv1.StaffingServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(zap.NewNop()), auth.UnaryInterceptor()),
	)
	staffingv1.RegisterStaffingServiceServer(server, srv)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return staffingv1.NewStaffingServiceClient(conn)
}

func TestStaffingService_Invoke(t *testing.T) {
	t.Parallel()

	stub := &stubExchangeUseCase{getOut: sampleShiftRequest()}
	auth := NewAuthenticator("secret", "staffing-engine")
	client := startBufServer(t, NewStaffingHandler(Deps{Exchange: stub}), auth)

	token, err := auth.Issue(employerAdmin, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	resp, err := client.GetShiftRequest(ctx, &staffingv1.IDRequest{Id: "request-1"})
	if err != nil {
		t.Fatalf("GetShiftRequest returned error: %v", err)
	}
	if resp.GetShiftRequest().GetId() != "request-1" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if resp.GetShiftRequest().GetMaxHourlyRate() != "25" {
		t.Errorf("expected rate 25, got %s", resp.GetShiftRequest().GetMaxHourlyRate())
	}
	if resp.GetShiftRequest().GetStartDate() != "2026-03-02" {
		t.Errorf("expected start date 2026-03-02, got %s", resp.GetShiftRequest().GetStartDate())
	}
	if stub.getActor.Role != actor.RoleEmployerAdmin {
		t.Errorf("expected actor from token, got %+v", stub.getActor)
	}
}

func TestStaffingService_Unauthenticated(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator("secret", "")
	client := startBufServer(t, NewStaffingHandler(Deps{Exchange: &stubExchangeUseCase{}}), auth)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.GetShiftRequest(ctx, &staffingv1.IDRequest{Id: "request-1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestStaffingService_DescriptorMatchesHandler(t *testing.T) {
	t.Parallel()

	sd := staffingv1.File_staffing_v1_staffing_proto.Services().ByName("StaffingService")
	if sd == nil {
		t.Fatal("StaffingService descriptor is not registered")
	}
	if got, want := sd.Methods().Len(), len(staffingv1.StaffingService_ServiceDesc.Methods); got != want {
		t.Fatalf("descriptor has %d methods, service desc has %d", got, want)
	}
	for _, m := range staffingv1.StaffingService_ServiceDesc.Methods {
		if sd.Methods().ByName(protoreflect.Name(m.MethodName)) == nil {
			t.Errorf("method %s missing from descriptor", m.MethodName)
		}
	}
}
