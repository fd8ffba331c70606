package handler

import (
	"context"
	"net/http"

	"foodtrucks-api/internal/metrics"
	"foodtrucks-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles facility text search requests
type SearchHandler struct {
	service SearchService
}

// Service interface for dependency injection
type SearchService interface {
	SearchByName(ctx context.Context, query, status string) ([]models.FacilityRecord, error)
	SearchByStreet(ctx context.Context, query string) ([]models.FacilityRecord, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// SearchByName handles GET /foodtrucks/search/name requests
//
//	@Summary	Search facilities by applicant name
//	@Tags		foodtrucks
//	@Produce	json
//	@Param		q		query		string	true	"Partial or full applicant name"
//	@Param		status	query		string	false	"Restrict to an exact permit status (e.g. APPROVED)"
//	@Success	200		{array}		models.FacilityRecord
//	@Failure	400		{object}	map[string]string
//	@Router		/foodtrucks/search/name [get]
func (h *SearchHandler) SearchByName(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	facilities, err := h.service.SearchByName(c.Request.Context(), query, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(facilities) == 0 {
		metrics.EmptyResultsTotal.WithLabelValues("/foodtrucks/search/name").Inc()
	}

	c.JSON(http.StatusOK, facilities)
}

// SearchByStreet handles GET /foodtrucks/search/street requests
//
//	@Summary	Search facilities by street address
//	@Tags		foodtrucks
//	@Produce	json
//	@Param		q	query		string	true	"Partial or full street name"
//	@Success	200	{array}		models.FacilityRecord
//	@Failure	400	{object}	map[string]string
//	@Router		/foodtrucks/search/street [get]
func (h *SearchHandler) SearchByStreet(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	facilities, err := h.service.SearchByStreet(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(facilities) == 0 {
		metrics.EmptyResultsTotal.WithLabelValues("/foodtrucks/search/street").Inc()
	}

	c.JSON(http.StatusOK, facilities)
}
