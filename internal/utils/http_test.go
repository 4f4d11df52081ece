package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Operation successful",
			data:       "test data",
		},
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Resource created",
			data:       map[string]interface{}{"id": "123", "name": "test"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
			data:       nil,
		},
		{
			name:       "Success with empty message",
			statusCode: http.StatusOK,
			message:    "",
			data:       "data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		errorMessage string
	}{
		{
			name:         "Internal server error",
			statusCode:   http.StatusInternalServerError,
			errorMessage: "Internal server error occurred",
		},
		{
			name:         "Bad request",
			statusCode:   http.StatusBadRequest,
			errorMessage: "Invalid request",
		},
		{
			name:         "Empty error message",
			statusCode:   http.StatusNotFound,
			errorMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := ErrorResponseHandler(c, tt.statusCode, tt.errorMessage)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.errorMessage, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}
}

func TestBadRequestResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	errorMessage := "Invalid input"
	err := BadRequestResponse(c, errorMessage)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, errorMessage, response.Error)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestUnauthorizedResponse(t *testing.T) {
	tests := []struct {
		name         string
		errorMessage string
		expected     string
	}{
		{
			name:         "Custom error message",
			errorMessage: "Invalid token",
			expected:     "Invalid token",
		},
		{
			name:         "Empty error message",
			errorMessage: "",
			expected:     "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := UnauthorizedResponse(c, tt.errorMessage)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, http.StatusUnauthorized, response.Code)
		})
	}
}

func TestInternalServerErrorResponse(t *testing.T) {
	tests := []struct {
		name         string
		errorMessage string
		expected     string
	}{
		{
			name:         "Custom error message",
			errorMessage: "Database unavailable",
			expected:     "Database unavailable",
		},
		{
			name:         "Empty error message",
			errorMessage: "",
			expected:     "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := InternalServerErrorResponse(c, tt.errorMessage)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
		})
	}
}

func TestTooManyRequestsResponse(t *testing.T) {
	tests := []struct {
		name         string
		errorMessage string
		expected     string
	}{
		{
			name:         "Custom error message",
			errorMessage: "Too many login attempts",
			expected:     "Too many login attempts",
		},
		{
			name:         "Empty error message",
			errorMessage: "",
			expected:     "Too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := TooManyRequestsResponse(c, tt.errorMessage)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
		})
	}
}
