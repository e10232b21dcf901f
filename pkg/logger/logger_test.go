package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/manpower-erp-api/pkg/config"
	"github.com/noah-isme/manpower-erp-api/pkg/middleware/requestid"
)

func TestZapConfig(t *testing.T) {
	prod := zapConfig(&config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn"}})
	assert.Equal(t, "json", prod.Encoding)
	assert.Equal(t, zapcore.WarnLevel, prod.Level.Level())

	dev := zapConfig(&config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Format: "Console", Level: "loud"}})
	assert.Equal(t, "console", dev.Encoding)
	assert.Equal(t, zapcore.InfoLevel, dev.Level.Level())
	assert.Equal(t, "timestamp", dev.EncoderConfig.TimeKey)
}

func TestNew(t *testing.T) {
	l, err := New(&config.Config{Env: config.EnvDevelopment})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestGinMiddlewareLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(requestid.Middleware(), GinMiddleware(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) {
		c.Set(SessionIDKey, "sess-1")
		c.Status(http.StatusOK)
	})
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "sess-1", entries[0].ContextMap()["session_id"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}
