package service

import (
	"context"
	"testing"

	"foodtrucks-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMapService_FeatureCollection(t *testing.T) {
	a := geocodedFacility(1, "A", 37.79, -122.39, "APPROVED")
	b := geocodedFacility(2, "B", 37.75, -122.41, "EXPIRED")

	mockRepo := new(MockGeocodedRepository)
	service := NewMapService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "").Return([]models.FacilityRecord{a, b}, nil)

	fc, err := service.FeatureCollection(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	require.NotNil(t, first.Geometry)
	// GeoJSON point order is lon, lat.
	assert.Equal(t, []float64{-122.39, 37.79}, first.Geometry.Point)
	assert.Equal(t, int64(1), first.Properties["locationid"])
	assert.Equal(t, "A", first.Properties["Applicant"])
	assert.Equal(t, "APPROVED", first.Properties["Status"])

	mockRepo.AssertExpectations(t)
}

func TestMapService_FeatureCollection_StatusConvention(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		expectedFilter string
	}{
		{name: "absent status means no filter", status: "", expectedFilter: ""},
		{name: "all means no filter", status: "all", expectedFilter: ""},
		{name: "specific status passes through", status: "APPROVED", expectedFilter: "APPROVED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGeocodedRepository)
			service := NewMapService(mockRepo)

			mockRepo.On("FindGeocoded", mock.Anything, tt.expectedFilter).Return([]models.FacilityRecord{}, nil)

			fc, err := service.FeatureCollection(context.Background(), tt.status)

			assert.NoError(t, err)
			assert.Empty(t, fc.Features)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMapService_FeatureCollection_RepositoryError(t *testing.T) {
	mockRepo := new(MockGeocodedRepository)
	service := NewMapService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "").Return([]models.FacilityRecord{}, assert.AnError)

	fc, err := service.FeatureCollection(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, fc)
}
