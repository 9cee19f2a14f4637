package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CityNotes-App/internal/application"
	"CityNotes-App/internal/domain/model"
)

const cityNotFoundMessage = "City not found"

// CitiesHandler 都市に関するHTTPハンドラー
type CitiesHandler struct {
	citiesService application.CitiesService
	logger        *zap.Logger
}

// NewCitiesHandler CitiesHandlerの新しいインスタンスを作成
func NewCitiesHandler(citiesService application.CitiesService, logger *zap.Logger) *CitiesHandler {
	return &CitiesHandler{
		citiesService: citiesService,
		logger:        logger,
	}
}

// ListCities GET /cities - 都市一覧（ノート件数付き）
func (h *CitiesHandler) ListCities(c *gin.Context) {
	cities, err := h.citiesService.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, cityNotFoundMessage, "Failed to fetch cities")
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GetCity GET /cities/:id - 都市の詳細とノート一覧
func (h *CitiesHandler) GetCity(c *gin.Context) {
	city, err := h.citiesService.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, cityNotFoundMessage, "Failed to fetch city")
		return
	}
	c.JSON(http.StatusOK, city)
}

// CreateCity POST /cities - 都市の作成
func (h *CitiesHandler) CreateCity(c *gin.Context) {
	var req model.CityInput
	if !bindJSON(c, &req) {
		return
	}

	city, err := h.citiesService.CreateCity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, cityNotFoundMessage, "Failed to create city")
		return
	}
	c.JSON(http.StatusCreated, city)
}

// UpdateCity PUT /cities/:id - 都市の置き換え
func (h *CitiesHandler) UpdateCity(c *gin.Context) {
	var req model.CityInput
	if !bindJSON(c, &req) {
		return
	}

	city, err := h.citiesService.UpdateCity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err, cityNotFoundMessage, "Failed to update city")
		return
	}
	c.JSON(http.StatusOK, city)
}

// DeleteCity DELETE /cities/:id - 都市とノートの削除
func (h *CitiesHandler) DeleteCity(c *gin.Context) {
	id := c.Param("id")
	if err := h.citiesService.DeleteCity(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, cityNotFoundMessage, "Failed to delete city")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "City deleted successfully",
		"id":      id,
	})
}

// GetCityFeatures GET /map/cities - 地図レイヤー用 GeoJSON
func (h *CitiesHandler) GetCityFeatures(c *gin.Context) {
	fc, err := h.citiesService.CityFeatures(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, cityNotFoundMessage, "Failed to fetch map layer")
		return
	}
	c.JSON(http.StatusOK, fc)
}
