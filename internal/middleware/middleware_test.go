package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(logger.NewNop()))
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestRouter()
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRequireID(t *testing.T) {
	r := newTestRouter()
	r.GET("/things/:id", RequireID("id"), func(c *gin.Context) {
		id, ok := GetID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/12", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":12}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ierr.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ierr.ErrCodeInvalidInput, body.Code)
}

func TestErrorHandler(t *testing.T) {
	r := newTestRouter()
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("no row").WithHint("Invoice not found").Mark(ierr.ErrNotFound))
	})
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"Invoice not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCORS_Preflight(t *testing.T) {
	r := newTestRouter()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
