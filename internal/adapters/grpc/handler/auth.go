package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
)

const (
	authorizationHeader = "authorization"
	bearerPrefix        = "bearer "
)

// Claims はアクセストークンのクレームです。sub が操作者の user id です。
type Claims struct {
	Role       string `json:"role"`
	AgencyID   string `json:"agency_id,omitempty"`
	EmployerID string `json:"employer_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator は HS256 署名の JWT を検証して Actor を復元します。
type Authenticator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewAuthenticator は Authenticator を生成します。issuer が空なら iss を検証しません。
func NewAuthenticator(secret, issuer string) *Authenticator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer, parser: jwt.NewParser(opts...)}
}

// Authenticate はトークン文字列を検証し、Actor を返します。
func (a *Authenticator) Authenticate(token string) (actor.Actor, error) {
	var claims Claims
	if _, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}); err != nil {
		return actor.Actor{}, fmt.Errorf("auth: %w", err)
	}
	if claims.Subject == "" {
		return actor.Actor{}, errors.New("auth: sub claim is required")
	}
	role, err := actor.ParseRole(claims.Role)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("auth: %w", err)
	}
	return actor.Actor{
		UserID:     claims.Subject,
		Role:       role,
		AgencyID:   claims.AgencyID,
		EmployerID: claims.EmployerID,
		EmployeeID: claims.EmployeeID,
	}, nil
}

// Issue は Actor のアクセストークンを発行します。運用ツールと結合テストで使います。
func (a *Authenticator) Issue(act actor.Actor, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Role:       string(act.Role),
		AgencyID:   act.AgencyID,
		EmployerID: act.EmployerID,
		EmployeeID: act.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   act.UserID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign: %w", err)
	}
	return signed, nil
}

// UnaryInterceptor は Authorization メタデータの Bearer トークンを検証し、Actor をコンテキストへ載せます。
func (a *Authenticator) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		token, err := bearerToken(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		act, err := a.Authenticate(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(WithActor(ctx, act), req)
	}
}

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("auth: missing metadata")
	}
	values := md.Get(authorizationHeader)
	if len(values) == 0 {
		return "", errors.New("auth: missing authorization header")
	}
	raw := strings.TrimSpace(values[0])
	if len(raw) <= len(bearerPrefix) || !strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		return "", errors.New("auth: authorization header must be a bearer token")
	}
	return strings.TrimSpace(raw[len(bearerPrefix):]), nil
}

type actorKey struct{}

// WithActor は Actor をコンテキストへ格納します。
func WithActor(ctx context.Context, a actor.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext はコンテキストの Actor を返します。
func ActorFromContext(ctx context.Context) (actor.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(actor.Actor)
	return a, ok
}

func requireActor(ctx context.Context) (actor.Actor, error) {
	a, ok := ActorFromContext(ctx)
	if !ok {
		return actor.Actor{}, status.Error(codes.Unauthenticated, "actor is required")
	}
	return a, nil
}
