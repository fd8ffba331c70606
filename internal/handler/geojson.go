package handler

import (
	"context"
	"net/http"

	geojson "github.com/paulmach/go.geojson"

	"github.com/gin-gonic/gin"
)

// MapHandler handles GeoJSON requests for the map UI
type MapHandler struct {
	service MapService
}

// Service interface for dependency injection
type MapService interface {
	FeatureCollection(ctx context.Context, status string) (*geojson.FeatureCollection, error)
}

// NewMapHandler creates a new map handler
func NewMapHandler(svc MapService) *MapHandler {
	return &MapHandler{service: svc}
}

// GeoJSON handles GET /foodtrucks/geojson requests
//
//	@Summary	Geocoded facilities as a GeoJSON FeatureCollection
//	@Tags		foodtrucks
//	@Produce	json
//	@Param		status	query	string	false	"Permit status filter; absent or 'all' includes every status"
//	@Success	200	{object}	geojson.FeatureCollection
//	@Router		/foodtrucks/geojson [get]
func (h *MapHandler) GeoJSON(c *gin.Context) {
	fc, err := h.service.FeatureCollection(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, fc)
}
