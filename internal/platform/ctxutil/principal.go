package ctxutil

import (
	"context"
	"strings"
)

type principalKey struct{}

// Principal is the caller identity resolved by the auth middleware.
// It is never derived from handler code; handlers only read it.
type Principal struct {
	Subject        string
	Role           string
	OrganizationID uint
}

// HasRole reports whether the principal's role is one of roles
// (case-insensitive). A nil principal has no role.
func (p *Principal) HasRole(roles ...string) bool {
	if p == nil || strings.TrimSpace(p.Role) == "" {
		return false
	}
	for _, r := range roles {
		if strings.EqualFold(strings.TrimSpace(r), p.Role) {
			return true
		}
	}
	return false
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func GetPrincipal(ctx context.Context) *Principal {
	if ctx == nil {
		return nil
	}
	if p, ok := ctx.Value(principalKey{}).(*Principal); ok {
		return p
	}
	return nil
}
