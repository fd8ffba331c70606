package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	geojson "github.com/paulmach/go.geojson"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMapService is a mock implementation of the MapService interface
type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) FeatureCollection(ctx context.Context, status string) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx, status)
	fc, _ := args.Get(0).(*geojson.FeatureCollection)
	return fc, args.Error(1)
}

func TestMapHandler_GeoJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fc := geojson.NewFeatureCollection()
	feature := geojson.NewPointFeature([]float64{-122.395, 37.7937})
	feature.SetProperty("Applicant", "Curry Up Now")
	fc.AddFeature(feature)

	t.Run("returns a feature collection", func(t *testing.T) {
		mockSvc := new(MockMapService)
		handler := NewMapHandler(mockSvc)

		mockSvc.On("FeatureCollection", mock.Anything, "").Return(fc, nil)

		w := performRequest(t, handler.GeoJSON, "/foodtrucks/geojson")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FeatureCollection", body["type"])
		assert.Len(t, body["features"], 1)
	})

	t.Run("status forwarded to the service", func(t *testing.T) {
		mockSvc := new(MockMapService)
		handler := NewMapHandler(mockSvc)

		mockSvc.On("FeatureCollection", mock.Anything, "EXPIRED").Return(geojson.NewFeatureCollection(), nil)

		w := performRequest(t, handler.GeoJSON, "/foodtrucks/geojson?status=EXPIRED")

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockMapService)
		handler := NewMapHandler(mockSvc)

		mockSvc.On("FeatureCollection", mock.Anything, "").Return(nil, assert.AnError)

		w := performRequest(t, handler.GeoJSON, "/foodtrucks/geojson")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}
