package models

import "time"

// FacilityRecord is a single mobile food facility permit as published in the
// San Francisco open dataset. JSON field names mirror the dataset column
// headers so API responses stay byte-compatible with the source data.
//
// Latitude and Longitude are nil for records the city never geocoded; such
// records are excluded from proximity search but still reachable through the
// name and street lookups. Approved and ExpirationDate are nil when the
// permit has no such date on file.
type FacilityRecord struct {
	LocationID     int64      `json:"locationid"`
	Applicant      string     `json:"Applicant"`
	FacilityType   string     `json:"FacilityType"`
	Cnn            string     `json:"cnn"`
	Address        string     `json:"Address"`
	Status         string     `json:"Status"`
	FoodItems      string     `json:"FoodItems"`
	Latitude       *float64   `json:"Latitude"`
	Longitude      *float64   `json:"Longitude"`
	Approved       *time.Time `json:"Approved"`
	ExpirationDate *time.Time `json:"ExpirationDate"`
	Location       string     `json:"Location"`
}

// Geocoded reports whether the record carries usable coordinates.
func (r FacilityRecord) Geocoded() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// RankedFacility is a FacilityRecord annotated with its geodesic distance in
// kilometers from a query point. Only proximity search produces these.
type RankedFacility struct {
	FacilityRecord
	DistanceKm float64 `json:"distance_km"`
}
