package gate

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const protected = "/bank.v1.BankService/Withdraw"

func incoming(pairs ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(pairs...))
}

func TestAuthenticatorOutcomes(t *testing.T) {
	a := NewAuthenticator(PrefixVerifier{Prefix: "valid"}, protected)

	tests := []struct {
		name     string
		ctx      context.Context
		code     codes.Code
		msg      string
		identity string
	}{
		{name: "no header", ctx: context.Background(), code: codes.Unauthenticated, msg: "credential required"},
		{name: "empty header", ctx: incoming(AuthorizationHeader, "  "), code: codes.Unauthenticated, msg: "credential required"},
		{name: "basic scheme", ctx: incoming(AuthorizationHeader, "Basic abc"), code: codes.Unauthenticated, msg: "malformed credential"},
		{name: "empty bearer", ctx: incoming(AuthorizationHeader, "Bearer "), code: codes.Unauthenticated, msg: "invalid token"},
		{name: "bare scheme", ctx: incoming(AuthorizationHeader, "Bearer"), code: codes.Unauthenticated, msg: "invalid token"},
		{name: "bearer spaces", ctx: incoming(AuthorizationHeader, "Bearer    "), code: codes.Unauthenticated, msg: "invalid token"},
		{name: "bearer glued", ctx: incoming(AuthorizationHeader, "Bearervalid"), code: codes.Unauthenticated, msg: "malformed credential"},
		{name: "bad token", ctx: incoming(AuthorizationHeader, "Bearer invalid"), code: codes.Unauthenticated, msg: "invalid token"},
		{name: "named identity", ctx: incoming(AuthorizationHeader, "Bearer valid-alice"), code: codes.OK, identity: "alice"},
		{name: "anonymous identity", ctx: incoming(AuthorizationHeader, "Bearer valid"), code: codes.OK, identity: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := a.Admit(tt.ctx, CallInfo{FullMethod: protected, Stream: true})
			st := status.Convert(err)
			if st.Code() != tt.code {
				t.Fatalf("code = %v, want %v", st.Code(), tt.code)
			}
			if tt.code != codes.OK {
				if st.Message() != tt.msg {
					t.Fatalf("message = %q, want %q", st.Message(), tt.msg)
				}
				return
			}
			id, ok := IdentityFromContext(ctx)
			if !ok || id != tt.identity {
				t.Fatalf("identity = %q, %v; want %q", id, ok, tt.identity)
			}
		})
	}
}

func TestAuthenticatorIgnoresOpenMethods(t *testing.T) {
	a := NewAuthenticator(PrefixVerifier{Prefix: "valid"}, protected)

	ctx, err := a.Admit(context.Background(), CallInfo{FullMethod: "/bank.v1.BankService/Deposit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatalf("identity attached to an open method")
	}
}

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier("s3cret")

	sign := func(key string, claims jwt.RegisteredClaims) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return tok
	}

	id, err := v.Verify(context.Background(), sign("s3cret", jwt.RegisteredClaims{Subject: "carol"}))
	if err != nil || id != "carol" {
		t.Fatalf("verify = %q, %v", id, err)
	}

	id, err = v.Verify(context.Background(), sign("s3cret", jwt.RegisteredClaims{}))
	if err != nil || id != "unknown" {
		t.Fatalf("verify without subject = %q, %v", id, err)
	}

	if _, err := v.Verify(context.Background(), sign("other", jwt.RegisteredClaims{Subject: "carol"})); err == nil {
		t.Fatalf("expected signature error")
	}

	expired := jwt.RegisteredClaims{Subject: "carol", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}
	if _, err := v.Verify(context.Background(), sign("s3cret", expired)); err == nil {
		t.Fatalf("expected expiry error")
	}
}
