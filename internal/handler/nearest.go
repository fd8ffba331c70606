package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"foodtrucks-api/internal/cache"
	"foodtrucks-api/internal/metrics"
	"foodtrucks-api/internal/models"
	"foodtrucks-api/internal/service"

	"github.com/gin-gonic/gin"
)

// NearestHandler handles proximity search requests
type NearestHandler struct {
	service NearestService
	cache   *cache.Cache
}

// Service interface for dependency injection
type NearestService interface {
	FindNearest(ctx context.Context, lat, lon float64, status string, limit int) ([]models.RankedFacility, error)
}

// NewNearestHandler creates a new nearest handler. The cache may be nil,
// which disables response caching.
func NewNearestHandler(svc NearestService, cache *cache.Cache) *NearestHandler {
	return &NearestHandler{service: svc, cache: cache}
}

// Nearest handles GET /foodtrucks/nearest requests
//
//	@Summary	Find the closest facilities to a point
//	@Tags		foodtrucks
//	@Produce	json
//	@Param		lat		query		number	true	"Latitude of the reference point"
//	@Param		lon		query		number	true	"Longitude of the reference point"
//	@Param		status	query		string	false	"Permit status filter; defaults to APPROVED, 'all' disables filtering"
//	@Param		limit	query		integer	false	"Maximum number of results; defaults to 5"
//	@Success	200		{array}		models.RankedFacility
//	@Failure	400		{object}	map[string]string
//	@Router		/foodtrucks/nearest [get]
func (h *NearestHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	status := c.DefaultQuery("status", service.DefaultStatus)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be a positive integer"})
		return
	}

	ctx := c.Request.Context()

	key := fmt.Sprintf("nearest:%s:%s:%s:%d", latStr, lonStr, strings.ToLower(status), limit)
	if body, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	results, err := h.service.FindNearest(ctx, lat, lon, status, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinate) || errors.Is(err, service.ErrInvalidLimit) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(results) == 0 {
		metrics.EmptyResultsTotal.WithLabelValues("/foodtrucks/nearest").Inc()
	}

	if body, err := json.Marshal(results); err == nil {
		h.cache.Set(ctx, key, body)
	}

	c.JSON(http.StatusOK, results)
}
