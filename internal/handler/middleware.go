package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CityNotes-App/internal/infrastructure/metrics"
)

// ルートに一致しなかったリクエストのメトリクスラベル
const unmatchedRoute = "unmatched"

// AccessLog ステータスに応じたレベルでアクセスログを出力するミドルウェア
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if shouldSkipLog(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("server_error", fields...)
		case status == 404:
			logger.Info("request", fields...)
		case status >= 400:
			logger.Warn("client_error", fields...)
		case c.Request.Method != "GET":
			logger.Info("request", fields...)
		default:
			logger.Debug("request", fields...)
		}
	}
}

// Metrics リクエスト数と処理時間を記録するミドルウェア
// ラベルにはパスではなく登録済みルートを使う
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func shouldSkipLog(path string) bool {
	return strings.HasPrefix(path, "/metrics") || strings.HasPrefix(path, "/api/health")
}
