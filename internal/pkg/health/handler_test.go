package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelhub/platform/internal/pkg/logger"
)

type fakeChecker struct {
	err error
}

func (f fakeChecker) CheckHealth(ctx context.Context) error {
	return f.err
}

func newTestHealthService(t *testing.T) *HealthService {
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return NewHealthService("auth-service", zl)
}

func TestHealthService_AllHealthy(t *testing.T) {
	hs := newTestHealthService(t)
	hs.AddChecker("postgres", fakeChecker{})
	hs.AddChecker("redis", fakeChecker{})

	response := hs.CheckAllHealth(context.Background())

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "auth-service", response.Service)
	assert.Len(t, response.Dependencies, 2)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "healthy", response.Dependencies["redis"].Status)
}

func TestHealthService_UnhealthyDependency(t *testing.T) {
	hs := newTestHealthService(t)
	hs.AddChecker("postgres", fakeChecker{})
	hs.AddChecker("redis", fakeChecker{err: errors.New("connection refused")})

	response := hs.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["redis"].Error)
}

func TestHealthService_Handler(t *testing.T) {
	hs := newTestHealthService(t)
	hs.AddChecker("redis", fakeChecker{err: errors.New("down")})

	e := echo.New()
	hs.RegisterHealthEndpoints(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
}
