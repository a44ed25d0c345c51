package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"banaapro/internal/apierror"
	"banaapro/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/boom", handler)
	return r
}

func TestErrorHandlerKeepsHandlerBody(t *testing.T) {
	// Handlers push into c.Errors for the log line but write their own
	// response; the middleware must not append a second JSON body.
	r := errorRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
		c.JSON(http.StatusInternalServerError, apierror.New("Could not save changes"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body must be a single JSON object: %s", w.Body.String())
	assert.Equal(t, "Could not save changes", body["detail"])
}

func TestErrorHandlerWritesFallbackForUnhandledErrors(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["detail"])
}
