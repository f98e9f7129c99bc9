package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/apperror"
)

func errorTestRequest(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/x", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestErrorHandler_AppError(t *testing.T) {
	w, body := errorTestRequest(t, func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("product", "abc"))
		c.Abort()
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, body["code"])
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	w, body := errorTestRequest(t, func(c *gin.Context) {
		_ = c.Error(apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity"))
		c.Abort()
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, body["code"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "quantity", details["field"])
}

func TestErrorHandler_UnknownErrorNeverLeaks(t *testing.T) {
	w, body := errorTestRequest(t, func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused to 10.0.0.5"))
		c.Abort()
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, body["code"])
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestErrorHandler_SkipsWrittenResponses(t *testing.T) {
	w, body := errorTestRequest(t, func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		_ = c.Error(errors.New("late error"))
	})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, true, body["ok"])
}

func TestErrorHandler_NoErrorsNoBody(t *testing.T) {
	w, _ := errorTestRequest(t, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}
