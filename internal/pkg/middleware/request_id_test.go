package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	assert.NoError(t, err)
	requestID := rec.Header().Get(echo.HeaderXRequestID)
	assert.NotEmpty(t, requestID)
	_, parseErr := uuid.Parse(requestID)
	assert.NoError(t, parseErr)
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "caller-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, "caller-supplied-id", rec.Header().Get(echo.HeaderXRequestID))
}
