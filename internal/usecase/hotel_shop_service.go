package usecase

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelShopService proxies offer lookups to the hotel API
type HotelShopService struct {
	repo    repository.HotelShopRepository
	headers *HeaderNormalizer
}

// NewHotelShopService creates a new shop service
func NewHotelShopService(repo repository.HotelShopRepository, defaults HeaderDefaults) *HotelShopService {
	return &HotelShopService{
		repo:    repo,
		headers: NewHeaderNormalizer(ShopOfferHeaderFields(defaults)),
	}
}

// GetPropertyOffers returns the offers of one property
func (s *HotelShopService) GetPropertyOffers(ctx context.Context, hotelCode string, query entity.PropertyOffersQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetPropertyOffers(ctx, hotelCode, query, headers)
}

// GetOfferDetails returns a single priced offer
func (s *HotelShopService) GetOfferDetails(ctx context.Context, hotelCode string, query entity.OfferDetailsQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOfferDetails(ctx, hotelCode, query, headers)
}
