package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func TestObserveAPISnapshot(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/packets", "200", 40*time.Millisecond)
	m.ObserveAPI("GET", "/api/packets/:id", "404", 20*time.Millisecond)
	m.ObserveAPI("POST", "/api/packets", "500", 60*time.Millisecond)
	m.IncPacketCache(true)
	m.IncPacketCache(false)
	m.IncPacketCache(false)

	s := m.Snapshot()
	require.Equal(t, 3.0, s.Requests)
	require.Equal(t, 1.0, s.ServerErrors)
	require.InDelta(t, float64(40*time.Millisecond), float64(s.AvgLatency), float64(time.Millisecond))
	require.Equal(t, 1.0, s.CacheHits)
	require.Equal(t, 2.0, s.CacheMisses)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.IncPacketWrite("packet", "ok")
	m.IncAuditFailure()
	require.Equal(t, Snapshot{}, m.Snapshot())
	require.NoError(t, m.WritePrometheus(&bytes.Buffer{}))
}

func TestWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/health", "200", 5*time.Millisecond)
	m.IncPacketWrite("section", "ok")

	var buf bytes.Buffer
	require.NoError(t, m.WritePrometheus(&buf))
	out := buf.String()
	require.Contains(t, out, `ap_api_requests_total{method="GET",route="/api/health",status="200"} 1.000000`)
	require.Contains(t, out, `ap_api_request_duration_seconds_bucket{method="GET",route="/api/health",status="200",le="0.005"} 1`)
	require.Contains(t, out, `ap_packet_writes_total{kind="section",status="ok"} 1.000000`)
	require.True(t, strings.HasPrefix(out, "# HELP ap_api_requests_total"))
}

func TestLabelEscaping(t *testing.T) {
	require.Equal(t, `{a="x\"y"}`, labelString([]string{"a"}, []string{`x"y`}))
	require.Equal(t, `{a="unknown"}`, labelString([]string{"a"}, nil))
	require.Equal(t, `{le="1"}`, withLe("", "1"))
	require.Equal(t, `{a="b",le="1"}`, withLe(`{a="b"}`, "1"))
}

func TestParseOtelHeaders(t *testing.T) {
	require.Nil(t, ParseOtelHeaders(""))
	require.Nil(t, ParseOtelHeaders("junk,=x"))
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, ParseOtelHeaders(" a=1 , b=2 ,c"))
}

func TestInitOTelDisabled(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.Nop(), OtelConfig{})
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
