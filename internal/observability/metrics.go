package observability

import (
	"context"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type Metrics struct {
	started time.Time

	apiRequests   *CounterVec
	apiLatency    *HistogramVec
	apiInflight   *Gauge
	apiReqTotal   *Counter
	apiReqError   *Counter
	apiLatencySum *Counter

	packetCache   *CounterVec
	packetWrites  *CounterVec
	auditFailures *Counter

	dbStats   *GaugeVec
	redisUp   *Gauge
	redisPing *Gauge

	scrapeInterval time.Duration
}

// Snapshot is a point-in-time read of the request counters.
type Snapshot struct {
	Requests      float64
	ServerErrors  float64
	AvgLatency    time.Duration
	Inflight      float64
	CacheHits     float64
	CacheMisses   float64
	Since         time.Time
	RedisUp       float64
	RedisPingSecs float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		started:     time.Now(),
		apiRequests: NewCounterVec("ap_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"ap_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:   NewGauge("ap_api_inflight_requests", "In-flight API requests."),
		apiReqTotal:   NewCounter("ap_api_requests_total_all", "Total API requests (all)."),
		apiReqError:   NewCounter("ap_api_requests_error_total", "Total API requests with 5xx status."),
		apiLatencySum: NewCounter("ap_api_request_seconds_sum_all", "Sum of API request latency in seconds."),
		packetCache:   NewCounterVec("ap_packet_cache_total", "Packet cache lookups by result.", []string{"result"}),
		packetWrites:  NewCounterVec("ap_packet_writes_total", "Packet and section writes by kind/status.", []string{"kind", "status"}),
		auditFailures: NewCounter("ap_audit_write_failures_total", "Audit log rows that failed to persist."),
		dbStats:       NewGaugeVec("ap_db_pool", "Database pool stats.", []string{"stat"}),
		redisUp:       NewGauge("ap_redis_up", "Redis reachability (1 up, 0 down)."),
		redisPing:     NewGauge("ap_redis_ping_seconds", "Redis ping latency in seconds."),

		scrapeInterval: 10 * time.Second,
	}
}

func (m *Metrics) StartServer(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(m.WriteHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if log != nil {
				log.Error("metrics server failed", "error", err, "addr", addr)
			}
		}
	}()
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight, m.apiReqTotal, m.apiReqError, m.apiLatencySum,
		m.packetCache, m.packetWrites, m.auditFailures,
		m.dbStats, m.redisUp, m.redisPing,
	}
	for _, wr := range writers {
		if err := wr.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
	m.apiReqTotal.Inc()
	m.apiLatencySum.Add(dur.Seconds())
	if isServerErrorStatus(status) {
		m.apiReqError.Inc()
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncPacketCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.packetCache.Inc("hit")
		return
	}
	m.packetCache.Inc("miss")
}

func (m *Metrics) IncPacketWrite(kind, status string) {
	if m == nil {
		return
	}
	m.packetWrites.Inc(kind, status)
}

func (m *Metrics) IncAuditFailure() {
	if m == nil {
		return
	}
	m.auditFailures.Inc()
}

func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Requests:      m.apiReqTotal.Value(),
		ServerErrors:  m.apiReqError.Value(),
		Inflight:      m.apiInflight.Value(),
		CacheHits:     m.packetCache.Value("hit"),
		CacheMisses:   m.packetCache.Value("miss"),
		Since:         m.started,
		RedisUp:       m.redisUp.Value(),
		RedisPingSecs: m.redisPing.Value(),
	}
	if s.Requests > 0 {
		s.AvgLatency = time.Duration(math.Round(m.apiLatencySum.Value() / s.Requests * float64(time.Second)))
	}
	return s
}

func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(m.scrapeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					if log != nil {
						log.Warn("metrics: db stats unavailable", "error", err)
					}
					continue
				}
				stats := sqlDB.Stats()
				m.dbStats.Set(float64(stats.OpenConnections), "open_connections")
				m.dbStats.Set(float64(stats.InUse), "in_use")
				m.dbStats.Set(float64(stats.Idle), "idle")
				m.dbStats.Set(float64(stats.WaitCount), "wait_count")
				m.dbStats.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
			}
		}
	}()
}

// StartRedisCollector pings through the shared client; it does not own
// or close it.
func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, rdb redis.Cmdable) {
	if m == nil || rdb == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(m.scrapeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				if err := rdb.Ping(ctx).Err(); err != nil {
					m.redisUp.Set(0)
					if log != nil {
						log.Warn("metrics: redis ping failed", "error", err)
					}
					continue
				}
				m.redisUp.Set(1)
				m.redisPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}

func isServerErrorStatus(status string) bool {
	status = strings.TrimSpace(status)
	if len(status) < 3 {
		return false
	}
	return status[0] == '5'
}
