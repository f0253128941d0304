package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(logger.Nop(), "", "s3cret")
	require.Equal(t, AuthModeJWT, svc.Mode())

	tok, err := svc.GenerateToken(ctxutil.Principal{Subject: "ops@example.com", Role: "admin", OrganizationID: 7}, time.Minute)
	require.NoError(t, err)

	ctx, err := svc.SetContextFromToken(context.Background(), tok)
	require.NoError(t, err)
	p := ctxutil.GetPrincipal(ctx)
	require.Equal(t, &ctxutil.Principal{Subject: "ops@example.com", Role: "admin", OrganizationID: 7}, p)
}

func TestTokenRejected(t *testing.T) {
	svc := NewAuthService(logger.Nop(), AuthModeJWT, "s3cret")
	other := NewAuthService(logger.Nop(), AuthModeJWT, "different")

	forged, err := other.GenerateToken(ctxutil.Principal{Subject: "x", Role: "super_admin"}, time.Minute)
	require.NoError(t, err)
	_, err = svc.SetContextFromToken(context.Background(), forged)
	require.Error(t, err)

	claims := JWTClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = svc.SetContextFromToken(context.Background(), expired)
	require.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{Role: "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.SetContextFromToken(context.Background(), unsigned)
	require.Error(t, err)

	ctx, err := svc.SetContextFromToken(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, ctxutil.GetPrincipal(ctx))
}

func TestTokenWithoutSecret(t *testing.T) {
	svc := NewAuthService(logger.Nop(), AuthModeJWT, "")
	_, err := svc.GenerateToken(ctxutil.Principal{Role: "admin"}, time.Minute)
	require.Error(t, err)
	_, err = svc.SetContextFromToken(context.Background(), "abc")
	require.Error(t, err)
}

func TestHeaderMode(t *testing.T) {
	svc := NewAuthService(logger.Nop(), "HEADER", "")
	require.Equal(t, AuthModeHeader, svc.Mode())

	ctx := svc.SetContextFromHeaders(context.Background(), " admin ", "", "3")
	require.Equal(t, &ctxutil.Principal{Subject: "header:admin", Role: "admin", OrganizationID: 3}, ctxutil.GetPrincipal(ctx))

	ctx = svc.SetContextFromHeaders(context.Background(), "", "someone", "1")
	require.Nil(t, ctxutil.GetPrincipal(ctx))
}
