package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), &Principal{Subject: "ops", Role: "admin", OrganizationID: 1})
	p := GetPrincipal(ctx)
	require.NotNil(t, p)
	require.Equal(t, "ops", p.Subject)
	require.True(t, p.HasRole("super_admin", "ADMIN"))
	require.False(t, p.HasRole("viewer"))
}

func TestMissingPrincipalHasNoRole(t *testing.T) {
	var p *Principal
	require.Nil(t, GetPrincipal(context.Background()))
	require.False(t, p.HasRole("admin"))
	require.False(t, (&Principal{Subject: "x"}).HasRole("admin", ""))
}

func TestTraceData(t *testing.T) {
	require.Nil(t, GetTraceData(context.Background()))
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t", RequestID: "r"})
	require.Equal(t, "r", GetTraceData(ctx).RequestID)
}

func TestLogFields(t *testing.T) {
	require.Empty(t, LogFields(context.Background()))

	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t", RequestID: "r"})
	require.Equal(t, []interface{}{"trace_id", "t", "request_id", "r"}, LogFields(ctx))

	ctx = WithPrincipal(ctx, &Principal{Subject: "ops", Role: "admin", OrganizationID: 4})
	require.Equal(t, []interface{}{"trace_id", "t", "request_id", "r", "org_id", uint(4)}, LogFields(ctx))
}
