package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bimbelhub/platform/internal/pkg/database"
	"github.com/bimbelhub/platform/internal/pkg/logger"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil // Skip if no PostgreSQL client
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil // Skip if no Redis client
	}
	return r.client.Client.Ping(ctx).Err()
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	serviceName string
	checkers    map[string]HealthChecker
	logger      *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(serviceName string, zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		serviceName: serviceName,
		checkers:    make(map[string]HealthChecker),
		logger:      zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	GoVersion    string                    `json:"go_version"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Service:      h.serviceName,
		GoVersion:    runtime.Version(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range h.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			h.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Status = "unhealthy"
			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

// Handler returns the echo handler for the health endpoint
func (h *HealthService) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		response := h.CheckAllHealth(c.Request().Context())
		status := http.StatusOK
		if response.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, response)
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func (h *HealthService) RegisterHealthEndpoints(e *echo.Echo) {
	e.GET("/health", h.Handler())
	e.GET("/healthz", h.Handler())

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":     h.serviceName,
			"hostname":    hostname,
			"server_time": time.Now(),
		})
	})
}
