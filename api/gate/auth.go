package gate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AuthorizationHeader is the metadata key carrying the bearer credential.
const AuthorizationHeader = "authorization"

const (
	bearerPrefix    = "Bearer "
	unknownIdentity = "unknown"
)

var (
	errCredentialRequired = status.Error(codes.Unauthenticated, "credential required")
	errMalformed          = status.Error(codes.Unauthenticated, "malformed credential")
	errInvalidToken       = status.Error(codes.Unauthenticated, "invalid token")
)

// ErrTokenRejected is returned by verifiers for tokens they do not accept.
var ErrTokenRejected = errors.New("token rejected")

// TokenVerifier turns a bearer token into a caller identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (identity string, err error)
}

// Authenticator requires a bearer credential on a fixed set of methods.
type Authenticator struct {
	verifier TokenVerifier
	methods  map[string]struct{}
}

// NewAuthenticator protects the given full method names.
func NewAuthenticator(verifier TokenVerifier, methods ...string) *Authenticator {
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		set[m] = struct{}{}
	}
	return &Authenticator{verifier: verifier, methods: set}
}

func (a *Authenticator) Name() string { return "authentication" }

func (a *Authenticator) Admit(ctx context.Context, call CallInfo) (context.Context, error) {
	if _, ok := a.methods[call.FullMethod]; !ok {
		return ctx, nil
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(AuthorizationHeader); len(vals) > 0 {
			header = vals[0]
		}
	}
	header = strings.TrimSpace(header)
	if header == "" {
		return ctx, errCredentialRequired
	}

	// A bare scheme is a bearer credential with an empty token. Transports
	// may strip the trailing space of "Bearer ".
	var token string
	switch {
	case header == strings.TrimSpace(bearerPrefix):
	case strings.HasPrefix(header, bearerPrefix):
		token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	default:
		return ctx, errMalformed
	}
	if token == "" {
		return ctx, errInvalidToken
	}
	identity, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return ctx, errInvalidToken
	}
	return WithIdentity(ctx, identity), nil
}

func (a *Authenticator) Inspect(context.Context, CallInfo, any) error { return nil }

// PrefixVerifier accepts any token starting with Prefix. The identity is
// the text after the first '-', e.g. "valid-alice" is "alice".
type PrefixVerifier struct {
	Prefix string
}

func (v PrefixVerifier) Verify(_ context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, v.Prefix) {
		return "", ErrTokenRejected
	}
	if _, after, ok := strings.Cut(token, "-"); ok && after != "" {
		return after, nil
	}
	return unknownIdentity, nil
}

// JWTVerifier accepts HS256 tokens signed with a shared secret. The
// identity is the subject claim.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRejected, err)
	}
	if claims.Subject == "" {
		return unknownIdentity, nil
	}
	return claims.Subject, nil
}
