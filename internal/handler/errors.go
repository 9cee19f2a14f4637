package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CityNotes-App/internal/domain/model"
)

// respondError ドメインのエラー分類をHTTPステータスに変換して返す
// notFoundMessage は 404 のとき、failureMessage は 500 のときにクライアントへ返す文言
func respondError(c *gin.Context, logger *zap.Logger, err error, notFoundMessage, failureMessage string) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": verr.Message,
			"field":   verr.Field,
		})
	case errors.Is(err, model.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": notFoundMessage,
		})
	default:
		logger.Error(failureMessage,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": failureMessage,
		})
	}
}

// bindJSON リクエストボディを解析する
// ジオメトリの検証エラーはバリデーションエラーとしてそのまま返す
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": verr.Message,
			"field":   verr.Field,
		})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": "Invalid JSON format: " + err.Error(),
	})
	return false
}
