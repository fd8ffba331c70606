package service

import (
	"context"
	"fmt"
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// MapService renders geocoded facilities as GeoJSON for the map UI
type MapService struct {
	repo GeocodedRepository
}

// NewMapService creates a new map service
func NewMapService(repo GeocodedRepository) *MapService {
	return &MapService{repo: repo}
}

// FeatureCollection returns every geocoded facility as a GeoJSON point
// feature. Unlike proximity search, an absent status here means no filter
// at all (the map shows everything); "all" behaves the same way.
func (s *MapService) FeatureCollection(ctx context.Context, status string) (*geojson.FeatureCollection, error) {
	filter := status
	if strings.EqualFold(filter, StatusAll) {
		filter = ""
	}

	facilities, err := s.repo.FindGeocoded(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load geocoded facilities: %w", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, f := range facilities {
		feature := geojson.NewPointFeature([]float64{*f.Longitude, *f.Latitude})
		feature.SetProperty("locationid", f.LocationID)
		feature.SetProperty("Applicant", f.Applicant)
		feature.SetProperty("FacilityType", f.FacilityType)
		feature.SetProperty("Address", f.Address)
		feature.SetProperty("Status", f.Status)
		feature.SetProperty("FoodItems", f.FoodItems)
		fc.AddFeature(feature)
	}

	return fc, nil
}
