package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/support371/Asset-Packet/internal/observability"
)

func TestGrade(t *testing.T) {
	cases := []struct {
		rate    float64
		latency time.Duration
		want    string
	}{
		{0, 45 * time.Millisecond, "A"},
		{0.0099, 199 * time.Millisecond, "A"},
		{0.0099, 250 * time.Millisecond, "B"},
		{0.04, 100 * time.Millisecond, "B"},
		{0.04, 600 * time.Millisecond, "C"},
		{0.09, 10 * time.Millisecond, "C"},
		{0.10, 10 * time.Millisecond, "D"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Grade(c.rate, c.latency), "rate=%v latency=%v", c.rate, c.latency)
	}
}

func TestDiagnosticsSnapshot(t *testing.T) {
	m := observability.NewMetrics()
	svc := NewDiagnosticsService(m, []string{"ID-X99", "SGP-1", "NYC-4"})

	idle := svc.Snapshot()
	require.Equal(t, Diagnostics{Latency: "0ms", ErrorRate: "0.00%", Uptime: "100.00%", Grade: "A", Nodes: []string{"ID-X99", "SGP-1", "NYC-4"}}, idle)

	for i := 0; i < 99; i++ {
		m.ObserveAPI("GET", "/api/packets", "200", 45*time.Millisecond)
	}
	m.ObserveAPI("GET", "/api/packets", "503", 45*time.Millisecond)

	got := svc.Snapshot()
	require.Equal(t, "45ms", got.Latency)
	require.Equal(t, "1.00%", got.ErrorRate)
	require.Equal(t, "99.00%", got.Uptime)
	require.Equal(t, "B", got.Grade)
}

func TestDiagnosticsWithoutMetrics(t *testing.T) {
	got := NewDiagnosticsService(nil, nil).Snapshot()
	require.Equal(t, "A", got.Grade)
	require.Nil(t, got.Nodes)
}
