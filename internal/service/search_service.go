package service

import (
	"context"
	"fmt"

	"foodtrucks-api/internal/models"
)

// SearchService contains the business logic for facility text search
type SearchService struct {
	repo SearchRepository
}

// Repository interface for dependency injection
type SearchRepository interface {
	SearchByApplicant(ctx context.Context, query, status string) ([]models.FacilityRecord, error)
	SearchByStreet(ctx context.Context, query string) ([]models.FacilityRecord, error)
}

// NewSearchService creates a new search service
func NewSearchService(repo SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// SearchByName finds facilities whose applicant name contains the query,
// case-insensitively. The status filter is optional and passed through
// verbatim: unlike proximity search there is no default and no "all"
// sentinel here, matching the source dataset API.
func (s *SearchService) SearchByName(ctx context.Context, query, status string) ([]models.FacilityRecord, error) {
	if query == "" {
		return nil, fmt.Errorf("service: search query cannot be empty")
	}

	facilities, err := s.repo.SearchByApplicant(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search by applicant: %w", err)
	}

	return facilities, nil
}

// SearchByStreet finds facilities whose address contains the query,
// case-insensitively.
func (s *SearchService) SearchByStreet(ctx context.Context, query string) ([]models.FacilityRecord, error) {
	if query == "" {
		return nil, fmt.Errorf("service: search query cannot be empty")
	}

	facilities, err := s.repo.SearchByStreet(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search by street: %w", err)
	}

	return facilities, nil
}
