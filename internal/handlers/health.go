// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/stockledger/internal/core/ports"
	"github.com/ammerola/stockledger/internal/pkg/config"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
)

// RedisChecker is the part of the redis client used by health checks
type RedisChecker interface {
	Ping(ctx context.Context) *redis.StatusCmd
	PoolStats() *redis.PoolStats
}

// QueueInspector is the part of the asynq inspector used by health checks
type QueueInspector interface {
	Queues() ([]string, error)
	GetQueueInfo(queue string) (*asynq.QueueInfo, error)
	Servers() ([]*asynq.ServerInfo, error)
}

// HealthHandler reports on the stores the inventory view is derived from and
// on the low stock scan queue
type HealthHandler struct {
	db        ports.Database
	redis     RedisChecker
	asynq     QueueInspector
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler. asynqInspector may be nil.
func NewHealthHandler(database ports.Database, redisClient RedisChecker, asynqInspector QueueInspector,
	cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:        database,
		redis:     redisClient,
		asynq:     asynqInspector,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	System      SystemInfo             `json:"system"`
}

// ServiceInfo is the result of one dependency check
type ServiceInfo struct {
	Status       string                 `json:"status"`
	Message      string                 `json:"message,omitempty"`
	ResponseTime string                 `json:"response_time,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

// dependencyCheck fills details and returns an error when the dependency is unusable
type dependencyCheck struct {
	name string
	run  func(ctx context.Context, details map[string]interface{}) error
}

func (h *HealthHandler) checks() []dependencyCheck {
	checks := []dependencyCheck{
		{name: "database", run: h.checkDatabase},
		{name: "redis", run: h.checkRedis},
	}
	if h.asynq != nil {
		checks = append(checks, dependencyCheck{name: "asynq", run: h.checkQueues})
	}
	return checks
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      statusHealthy,
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Services:    make(map[string]ServiceInfo),
		System:      systemInfo(),
	}

	for _, check := range h.checks() {
		info := h.run(ctx, check)
		health.Services[check.name] = info
		if info.Status != statusHealthy {
			health.Status = statusDegraded
		}
	}

	statusCode := http.StatusOK
	if health.Status != statusHealthy {
		statusCode = http.StatusServiceUnavailable
	}
	h.writeStatus(ctx, w, statusCode, health)
}

// Readiness handles GET /ready. Only the stores needed to serve reads and writes count.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := map[string]string{"database": "ready", "redis": "ready"}

	if err := h.db.Ping(ctx); err != nil {
		ready = false
		details["database"] = "not ready"
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		ready = false
		details["redis"] = "not ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	h.writeStatus(ctx, w, statusCode, map[string]interface{}{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) run(ctx context.Context, check dependencyCheck) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{Status: statusHealthy, Details: make(map[string]interface{})}

	if err := check.run(ctx, info.Details); err != nil {
		h.logger.ErrorContext(ctx, "health check failed",
			slog.String("dependency", check.name),
			slog.String("error", err.Error()))
		return ServiceInfo{Status: statusUnhealthy, Message: err.Error()}
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

func (h *HealthHandler) checkDatabase(ctx context.Context, details map[string]interface{}) error {
	if err := h.db.Ping(ctx); err != nil {
		return err
	}
	for k, v := range h.db.Health(ctx) {
		details[k] = v
	}
	return nil
}

func (h *HealthHandler) checkRedis(ctx context.Context, details map[string]interface{}) error {
	pong, err := h.redis.Ping(ctx).Result()
	if err != nil {
		return err
	}

	stats := h.redis.PoolStats()
	details["ping"] = pong
	details["total_conns"] = stats.TotalConns
	details["idle_conns"] = stats.IdleConns
	return nil
}

// checkQueues reports backlog per queue; pending scans mean alerts are lagging writes
func (h *HealthHandler) checkQueues(_ context.Context, details map[string]interface{}) error {
	queues, err := h.asynq.Queues()
	if err != nil {
		return err
	}

	backlog := make(map[string]interface{}, len(queues))
	for _, queue := range queues {
		q, err := h.asynq.GetQueueInfo(queue)
		if err != nil {
			continue
		}
		backlog[queue] = map[string]int{
			"pending":   q.Pending,
			"scheduled": q.Scheduled,
			"active":    q.Active,
			"retry":     q.Retry,
			"archived":  q.Archived,
		}
	}
	details["queues"] = backlog

	if servers, err := h.asynq.Servers(); err == nil {
		details["workers"] = len(servers)
	}
	return nil
}

func (h *HealthHandler) writeStatus(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response", slog.String("error", err.Error()))
	}
}

func systemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		MemoryAllocMB: mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
	}
}
