package services

import (
	"fmt"
	"time"

	"github.com/support371/Asset-Packet/internal/observability"
)

type Diagnostics struct {
	Latency   string   `json:"latency"`
	ErrorRate string   `json:"errorRate"`
	Uptime    string   `json:"uptime"`
	Grade     string   `json:"grade"`
	Nodes     []string `json:"nodes,omitempty"`
}

type DiagnosticsService interface {
	Snapshot() Diagnostics
}

type diagnosticsService struct {
	metrics *observability.Metrics
	nodes   []string
}

func NewDiagnosticsService(metrics *observability.Metrics, nodes []string) DiagnosticsService {
	return &diagnosticsService{metrics: metrics, nodes: append([]string(nil), nodes...)}
}

// Snapshot summarises the request metrics recorded since start. With no
// traffic the service reports a perfect record.
func (s *diagnosticsService) Snapshot() Diagnostics {
	snap := s.metrics.Snapshot()
	errRate := 0.0
	if snap.Requests > 0 {
		errRate = snap.ServerErrors / snap.Requests
	}
	return Diagnostics{
		Latency:   fmt.Sprintf("%dms", snap.AvgLatency.Round(time.Millisecond).Milliseconds()),
		ErrorRate: fmt.Sprintf("%.2f%%", errRate*100),
		Uptime:    fmt.Sprintf("%.2f%%", (1-errRate)*100),
		Grade:     Grade(errRate, snap.AvgLatency),
		Nodes:     s.nodes,
	}
}

// Grade maps a 5xx ratio and mean latency to a letter.
func Grade(errRate float64, latency time.Duration) string {
	switch {
	case errRate < 0.01 && latency < 200*time.Millisecond:
		return "A"
	case errRate < 0.05 && latency < 500*time.Millisecond:
		return "B"
	case errRate < 0.10:
		return "C"
	default:
		return "D"
	}
}
