package usecase

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelReservationsService proxies reservation management to the hotel API
type HotelReservationsService struct {
	repo    repository.HotelReservationsRepository
	headers *HeaderNormalizer
}

// NewHotelReservationsService creates a new reservations service
func NewHotelReservationsService(repo repository.HotelReservationsRepository, defaults HeaderDefaults) *HotelReservationsService {
	return &HotelReservationsService{
		repo:    repo,
		headers: NewHeaderNormalizer(ReservationHeaderFields(defaults)),
	}
}

func (s *HotelReservationsService) ListReservations(ctx context.Context, hotelID string, query entity.HotelReservationsQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.ListReservations(ctx, hotelID, query, headers)
}

func (s *HotelReservationsService) GetReservationsSummary(ctx context.Context, hotelID string, query entity.ReservationsSummaryQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetReservationsSummary(ctx, hotelID, query, headers)
}

func (s *HotelReservationsService) GetReservationStatistics(ctx context.Context, hotelID string, query entity.ReservationStatisticsQuery, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetReservationStatistics(ctx, hotelID, query, headers)
}

// CreateReservation marks guests primary unless told otherwise, then forwards the body
func (s *HotelReservationsService) CreateReservation(ctx context.Context, hotelID string, body entity.CreateReservationRequest, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	body.MarkPrimaryGuests()
	return s.repo.CreateReservation(ctx, hotelID, body, headers)
}

func (s *HotelReservationsService) UpdateReservation(ctx context.Context, hotelID, reservationID string, body entity.CreateReservationRequest, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	body.MarkPrimaryGuests()
	return s.repo.UpdateReservation(ctx, hotelID, reservationID, body, headers)
}

func (s *HotelReservationsService) CancelReservation(ctx context.Context, hotelID, reservationID string, body entity.CancelReservationRequest, inbound http.Header) ([]byte, error) {
	headers, err := s.headers.Normalize(inbound)
	if err != nil {
		return nil, err
	}
	return s.repo.CancelReservation(ctx, hotelID, reservationID, body, headers)
}
