package usecase

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelInventoryService proxies inventory statistics to the hotel API
type HotelInventoryService struct {
	repo    repository.HotelInventoryRepository
	headers *HeaderNormalizer
}

// NewHotelInventoryService creates a new inventory service
func NewHotelInventoryService(repo repository.HotelInventoryRepository, defaults HeaderDefaults) *HotelInventoryService {
	return &HotelInventoryService{
		repo:    repo,
		headers: NewHeaderNormalizer(StandardHeaderFields(defaults)),
	}
}

func (s *HotelInventoryService) GetInventoryStatistics(ctx context.Context, hotelID string, query entity.InventoryStatisticsQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetInventoryStatistics(ctx, hotelID, query, headers)
}
