package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/actor"
)

func TestAuthenticator_IssueAndAuthenticate(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator("secret", "staffing-engine")
	want := actor.Actor{UserID: "user-1", Role: actor.RoleAgencyAdmin, AgencyID: "agency-1"}

	token, err := auth.Issue(want, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	got, err := auth.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAuthenticator_Rejects(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator("secret", "staffing-engine")
	valid := actor.Actor{UserID: "user-1", Role: actor.RoleEmployee, EmployeeID: "employee-1"}

	expired, err := auth.Issue(valid, time.Now().Add(-2*time.Hour), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	otherKey, err := NewAuthenticator("other", "staffing-engine").Issue(valid, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	otherIssuer, err := NewAuthenticator("secret", "someone-else").Issue(valid, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	unknownRole, err := auth.Issue(actor.Actor{UserID: "user-1", Role: "janitor"}, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	noSubject, err := auth.Issue(actor.Actor{Role: actor.RoleEmployee}, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tokens := map[string]string{
		"expired":      expired,
		"other key":    otherKey,
		"other issuer": otherIssuer,
		"unknown role": unknownRole,
		"no subject":   noSubject,
		"garbage":      "not-a-jwt",
	}
	for name, token := range tokens {
		if _, err := auth.Authenticate(token); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestAuthenticator_UnaryInterceptor(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator("secret", "")
	want := actor.Actor{UserID: "user-1", Role: actor.RoleSuperAdmin}
	token, err := auth.Issue(want, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	interceptor := auth.UnaryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: staffingv1.StaffingService_GetShift_FullMethodName}

	var seen actor.Actor
	next := func(ctx context.Context, req any) (any, error) {
		a, _ := ActorFromContext(ctx)
		seen = a
		return "ok", nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	if _, err := interceptor(ctx, nil, info, next); err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}
	if seen != want {
		t.Fatalf("expected actor %+v, got %+v", want, seen)
	}

	cases := map[string]context.Context{
		"no metadata": context.Background(),
		"no header":   metadata.NewIncomingContext(context.Background(), metadata.MD{}),
		"not bearer":  metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc")),
		"bad token":   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer nope")),
	}
	for name, c := range cases {
		if _, err := interceptor(c, nil, info, next); status.Code(err) != codes.Unauthenticated {
			t.Errorf("%s: expected Unauthenticated, got %v", name, status.Code(err))
		}
	}
}
