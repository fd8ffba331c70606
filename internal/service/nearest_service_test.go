package service

import (
	"context"
	"testing"

	"foodtrucks-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGeocodedRepository is a mock implementation of the GeocodedRepository interface
type MockGeocodedRepository struct {
	mock.Mock
}

// FindGeocoded implements GeocodedRepository.
func (m *MockGeocodedRepository) FindGeocoded(ctx context.Context, status string) ([]models.FacilityRecord, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.FacilityRecord), args.Error(1)
}

func geocodedFacility(id int64, applicant string, lat, lon float64, status string) models.FacilityRecord {
	return models.FacilityRecord{
		LocationID: id,
		Applicant:  applicant,
		Status:     status,
		Latitude:   &lat,
		Longitude:  &lon,
	}
}

func TestNearestService_FindNearest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lon         float64
		limit       int
		expectedErr error
	}{
		{name: "latitude above range", lat: 95, lon: -122, limit: 5, expectedErr: ErrInvalidCoordinate},
		{name: "latitude below range", lat: -90.5, lon: -122, limit: 5, expectedErr: ErrInvalidCoordinate},
		{name: "longitude above range", lat: 37, lon: 180.1, limit: 5, expectedErr: ErrInvalidCoordinate},
		{name: "longitude below range", lat: 37, lon: -181, limit: 5, expectedErr: ErrInvalidCoordinate},
		{name: "zero limit", lat: 37, lon: -122, limit: 0, expectedErr: ErrInvalidLimit},
		{name: "negative limit", lat: 37, lon: -122, limit: -3, expectedErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGeocodedRepository)
			service := NewNearestService(mockRepo)

			result, err := service.FindNearest(context.Background(), tt.lat, tt.lon, "", tt.limit)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, result)
			// Validation fails fast, before any candidate lookup.
			mockRepo.AssertNotCalled(t, "FindGeocoded", mock.Anything, mock.Anything)
		})
	}
}

func TestNearestService_FindNearest_StatusConvention(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		expectedFilter string
	}{
		{name: "absent status defaults to APPROVED", status: "", expectedFilter: "APPROVED"},
		{name: "all disables filtering", status: "all", expectedFilter: ""},
		{name: "ALL is matched case-insensitively", status: "ALL", expectedFilter: ""},
		{name: "specific status passes through", status: "expired", expectedFilter: "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGeocodedRepository)
			service := NewNearestService(mockRepo)

			mockRepo.On("FindGeocoded", mock.Anything, tt.expectedFilter).Return([]models.FacilityRecord{}, nil)

			result, err := service.FindNearest(context.Background(), 37.0, -122.0, tt.status, 5)

			assert.NoError(t, err)
			assert.Empty(t, result)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNearestService_FindNearest_Ranking(t *testing.T) {
	// A sits on the query point, B is 0.01 degrees of latitude north
	// (roughly 1.11 km), C was never geocoded.
	a := geocodedFacility(1, "A", 37.0, -122.0, "APPROVED")
	b := geocodedFacility(2, "B", 37.01, -122.0, "EXPIRED")
	c := models.FacilityRecord{LocationID: 3, Applicant: "C", Status: "APPROVED"}

	mockRepo := new(MockGeocodedRepository)
	service := NewNearestService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "").Return([]models.FacilityRecord{a, c, b}, nil)

	result, err := service.FindNearest(context.Background(), 37.0, -122.0, "all", 5)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].Applicant)
	assert.InDelta(t, 0.0, result[0].DistanceKm, 1e-9)
	assert.Equal(t, "B", result[1].Applicant)
	assert.InDelta(t, 1.11, result[1].DistanceKm, 0.01)
}

func TestNearestService_FindNearest_LimitTruncation(t *testing.T) {
	a := geocodedFacility(1, "A", 37.0, -122.0, "APPROVED")
	b := geocodedFacility(2, "B", 37.01, -122.0, "APPROVED")

	mockRepo := new(MockGeocodedRepository)
	service := NewNearestService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "APPROVED").Return([]models.FacilityRecord{a, b}, nil)

	t.Run("truncates to limit", func(t *testing.T) {
		result, err := service.FindNearest(context.Background(), 37.0, -122.0, "APPROVED", 1)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "A", result[0].Applicant)
	})

	t.Run("fewer candidates than limit is not an error", func(t *testing.T) {
		result, err := service.FindNearest(context.Background(), 37.0, -122.0, "APPROVED", 50)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestNearestService_FindNearest_SortedAscending(t *testing.T) {
	// Candidate order is deliberately scrambled relative to distance.
	candidates := []models.FacilityRecord{
		geocodedFacility(1, "far", 37.2, -122.0, "APPROVED"),
		geocodedFacility(2, "near", 37.001, -122.0, "APPROVED"),
		geocodedFacility(3, "mid", 37.05, -122.0, "APPROVED"),
	}

	mockRepo := new(MockGeocodedRepository)
	service := NewNearestService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "APPROVED").Return(candidates, nil)

	result, err := service.FindNearest(context.Background(), 37.0, -122.0, "", 5)
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "near", result[0].Applicant)
	assert.Equal(t, "mid", result[1].Applicant)
	assert.Equal(t, "far", result[2].Applicant)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].DistanceKm, result[i].DistanceKm)
	}
}

func TestNearestService_FindNearest_StableTieBreak(t *testing.T) {
	// East and west offsets of equal magnitude at the same latitude are
	// exactly equidistant from the query point; the candidate order must
	// decide their relative rank.
	east := geocodedFacility(7, "east", 37.0, -121.99, "APPROVED")
	west := geocodedFacility(8, "west", 37.0, -122.01, "APPROVED")

	mockRepo := new(MockGeocodedRepository)
	service := NewNearestService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "APPROVED").Return([]models.FacilityRecord{east, west}, nil)

	result, err := service.FindNearest(context.Background(), 37.0, -122.0, "", 5)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.InDelta(t, result[0].DistanceKm, result[1].DistanceKm, 1e-9)
	assert.Equal(t, "east", result[0].Applicant)
	assert.Equal(t, "west", result[1].Applicant)
}

func TestNearestService_FindNearest_Idempotent(t *testing.T) {
	candidates := []models.FacilityRecord{
		geocodedFacility(1, "A", 37.0, -122.0, "APPROVED"),
		geocodedFacility(2, "B", 37.01, -122.0, "APPROVED"),
		geocodedFacility(3, "C", 36.99, -122.02, "APPROVED"),
	}

	mockRepo := new(MockGeocodedRepository)
	service := NewNearestService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "APPROVED").Return(candidates, nil)

	first, err := service.FindNearest(context.Background(), 37.0, -122.0, "", 5)
	require.NoError(t, err)
	second, err := service.FindNearest(context.Background(), 37.0, -122.0, "", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNearestService_FindNearest_RepositoryError(t *testing.T) {
	mockRepo := new(MockGeocodedRepository)
	service := NewNearestService(mockRepo)

	mockRepo.On("FindGeocoded", mock.Anything, "APPROVED").Return([]models.FacilityRecord{}, assert.AnError)

	result, err := service.FindNearest(context.Background(), 37.0, -122.0, "", 5)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCoordinate)
	assert.NotErrorIs(t, err, ErrInvalidLimit)
	assert.Nil(t, result)
}
