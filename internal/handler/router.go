package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CityNotes-App/internal/application"
	"CityNotes-App/internal/infrastructure/metrics"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker ストアの疎通確認
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// RouterDeps ルーター構築に必要な依存
type RouterDeps struct {
	CitiesService application.CitiesService
	NotesService  application.NotesService
	Health        HealthChecker // nil の場合は常に healthy
	Logger        *zap.Logger
}

// NewRouter ルーティングとミドルウェアを設定した gin.Engine を作成
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), AccessLog(deps.Logger), Metrics())

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method_not_allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Route not found",
		})
	})

	citiesHandler := NewCitiesHandler(deps.CitiesService, deps.Logger)
	notesHandler := NewNotesHandler(deps.NotesService, deps.Logger)

	cities := r.Group("/cities")
	{
		cities.GET("", citiesHandler.ListCities)
		cities.POST("", citiesHandler.CreateCity)
		cities.GET("/:id", citiesHandler.GetCity)
		cities.PUT("/:id", citiesHandler.UpdateCity)
		cities.DELETE("/:id", citiesHandler.DeleteCity)

		cities.GET("/:id/notes", notesHandler.ListNotes)
		cities.POST("/:id/notes", notesHandler.CreateNote)
		cities.GET("/:id/notes/:noteId", notesHandler.GetNote)
		cities.PUT("/:id/notes/:noteId", notesHandler.UpdateNote)
		cities.DELETE("/:id/notes/:noteId", notesHandler.DeleteNote)
	}

	r.GET("/map/cities", citiesHandler.GetCityFeatures)
	r.GET("/api/health", healthHandler(deps.Health, deps.Logger))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}

// healthHandler GET /api/health - 稼働確認とストアの疎通確認
func healthHandler(checker HealthChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := checker.HealthCheck(ctx); err != nil {
				logger.Warn("ヘルスチェック失敗", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":   "unhealthy",
					"service":  "citynotes",
					"database": "unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"service":  "citynotes",
			"database": "ok",
		})
	}
}
