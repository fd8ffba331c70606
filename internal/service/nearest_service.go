package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"foodtrucks-api/internal/geo"
	"foodtrucks-api/internal/models"
)

const (
	// DefaultStatus restricts proximity search when no status is given.
	DefaultStatus = "APPROVED"
	// StatusAll disables status filtering entirely. It is a distinct value
	// from an absent status, which means "apply the default".
	StatusAll = "all"
	// DefaultLimit is the number of results returned when no limit is given.
	DefaultLimit = 5
)

// NearestService ranks geocoded facilities by geodesic distance from a
// query point
type NearestService struct {
	repo GeocodedRepository
}

// Repository interface for dependency injection
type GeocodedRepository interface {
	FindGeocoded(ctx context.Context, status string) ([]models.FacilityRecord, error)
}

// NewNearestService creates a new nearest service
func NewNearestService(repo GeocodedRepository) *NearestService {
	return &NearestService{repo: repo}
}

// FindNearest returns the limit closest geocoded facilities to the query
// point, ascending by distance. An empty status applies the APPROVED
// default; "all" (case-insensitive) disables status filtering. Results
// with equal distance keep their candidate order (locationid ascending),
// so identical inputs against an unchanged store always produce
// identical output.
func (s *NearestService) FindNearest(ctx context.Context, lat, lon float64, status string, limit int) ([]models.RankedFacility, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %v must be within [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude %v must be within [-180, 180]", ErrInvalidCoordinate, lon)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit %d must be a positive integer", ErrInvalidLimit, limit)
	}

	filter := status
	if filter == "" {
		filter = DefaultStatus
	}
	if strings.EqualFold(filter, StatusAll) {
		filter = ""
	}

	candidates, err := s.repo.FindGeocoded(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load geocoded facilities: %w", err)
	}

	ranked := make([]models.RankedFacility, 0, len(candidates))
	for _, f := range candidates {
		if !f.Geocoded() {
			// Records without coordinates are never eligible for ranking.
			continue
		}
		ranked = append(ranked, models.RankedFacility{
			FacilityRecord: f,
			DistanceKm:     geo.DistanceKm(lat, lon, *f.Latitude, *f.Longitude),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}
