package usecase

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelAvailabilityService proxies property searches to the hotel API
type HotelAvailabilityService struct {
	repo    repository.HotelAvailabilityRepository
	headers *HeaderNormalizer
}

// NewHotelAvailabilityService creates a new availability service
func NewHotelAvailabilityService(repo repository.HotelAvailabilityRepository, defaults HeaderDefaults) *HotelAvailabilityService {
	return &HotelAvailabilityService{
		repo:    repo,
		headers: NewHeaderNormalizer(StandardHeaderFields(defaults)),
	}
}

// SearchProperties returns the upstream search result unchanged
func (s *HotelAvailabilityService) SearchProperties(ctx context.Context, query entity.PropertySearchQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchProperties(ctx, query, headers)
}
