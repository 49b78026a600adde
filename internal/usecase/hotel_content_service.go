package usecase

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelContentService proxies content lookups to the hotel API
type HotelContentService struct {
	repo    repository.HotelContentRepository
	headers *HeaderNormalizer
}

// NewHotelContentService creates a new content service
func NewHotelContentService(repo repository.HotelContentRepository, defaults HeaderDefaults) *HotelContentService {
	return &HotelContentService{
		repo:    repo,
		headers: NewHeaderNormalizer(StandardHeaderFields(defaults)),
	}
}

func (s *HotelContentService) ListProperties(ctx context.Context, query entity.PropertiesSummaryQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.ListProperties(ctx, query, headers)
}

func (s *HotelContentService) GetProperty(ctx context.Context, hotelCode string, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetProperty(ctx, hotelCode, headers)
}

func (s *HotelContentService) GetRoomTypes(ctx context.Context, hotelCode string, query entity.RoomTypesQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetRoomTypes(ctx, hotelCode, query, headers)
}
