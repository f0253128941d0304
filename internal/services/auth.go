package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

const (
	AuthModeJWT    = "jwt"
	AuthModeHeader = "header"
)

type JWTClaims struct {
	Role  string `json:"role"`
	OrgID uint   `json:"org_id,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Mode() string
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	SetContextFromHeaders(ctx context.Context, role, subject, orgID string) context.Context
	GenerateToken(p ctxutil.Principal, ttl time.Duration) (string, error)
}

type authService struct {
	log          *logger.Logger
	mode         string
	jwtSecretKey string
}

func NewAuthService(log *logger.Logger, mode, jwtSecretKey string) AuthService {
	serviceLog := log.With("service", "AuthService")
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode != AuthModeHeader {
		mode = AuthModeJWT
	}
	if mode == AuthModeHeader {
		serviceLog.Warn("AUTH_MODE=header trusts client-supplied role headers; use for local development only")
	} else if jwtSecretKey == "" {
		serviceLog.Warn("JWT_SECRET_KEY is empty; every bearer token will be rejected")
	}
	return &authService{log: serviceLog, mode: mode, jwtSecretKey: jwtSecretKey}
}

func (as *authService) Mode() string { return as.mode }

func (as *authService) GenerateToken(p ctxutil.Principal, ttl time.Duration) (string, error) {
	if as.jwtSecretKey == "" {
		return "", fmt.Errorf("JWT_SECRET_KEY is not configured")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	now := time.Now()
	claims := JWTClaims{
		Role:  p.Role,
		OrgID: p.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// SetContextFromToken verifies an HS256 token and attaches its principal.
// An empty token leaves ctx untouched.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	if as.jwtSecretKey == "" {
		return ctx, fmt.Errorf("JWT_SECRET_KEY is not configured")
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ctx, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("invalid or expired token")
	}
	p := &ctxutil.Principal{
		Subject:        claims.Subject,
		Role:           strings.TrimSpace(claims.Role),
		OrganizationID: claims.OrgID,
	}
	return ctxutil.WithPrincipal(ctx, p), nil
}

// SetContextFromHeaders is the development stand-in for token auth. A
// blank role attaches nothing.
func (as *authService) SetContextFromHeaders(ctx context.Context, role, subject, orgID string) context.Context {
	role = strings.TrimSpace(role)
	if role == "" {
		return ctx
	}
	p := &ctxutil.Principal{Subject: strings.TrimSpace(subject), Role: role}
	if p.Subject == "" {
		p.Subject = "header:" + strings.ToLower(role)
	}
	if n, err := strconv.ParseUint(strings.TrimSpace(orgID), 10, 64); err == nil {
		p.OrganizationID = uint(n)
	}
	return ctxutil.WithPrincipal(ctx, p)
}
