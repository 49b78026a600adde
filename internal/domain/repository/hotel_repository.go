package repository

import (
	"context"

	"partner-portal-service/internal/domain/entity"
)

// The hotel API repositories return the upstream body unchanged. Failures are
// *apperror.Error values tagged UpstreamRejected or UpstreamFailure.

// HotelAvailabilityRepository searches availability across properties
type HotelAvailabilityRepository interface {
	SearchProperties(ctx context.Context, query entity.PropertySearchQuery, headers entity.Headers) ([]byte, error)
}

// HotelShopRepository reads offers of a single property
type HotelShopRepository interface {
	GetPropertyOffers(ctx context.Context, hotelCode string, query entity.PropertyOffersQuery, headers entity.Headers) ([]byte, error)
	GetOfferDetails(ctx context.Context, hotelCode string, query entity.OfferDetailsQuery, headers entity.Headers) ([]byte, error)
}

// HotelContentRepository reads static hotel content
type HotelContentRepository interface {
	ListProperties(ctx context.Context, query entity.PropertiesSummaryQuery, headers entity.Headers) ([]byte, error)
	GetProperty(ctx context.Context, hotelCode string, headers entity.Headers) ([]byte, error)
	GetRoomTypes(ctx context.Context, hotelCode string, query entity.RoomTypesQuery, headers entity.Headers) ([]byte, error)
}

// HotelInventoryRepository reads inventory statistics
type HotelInventoryRepository interface {
	GetInventoryStatistics(ctx context.Context, hotelID string, query entity.InventoryStatisticsQuery, headers entity.Headers) ([]byte, error)
}

// HotelReservationsRepository manages reservations held by the hotel API
type HotelReservationsRepository interface {
	ListReservations(ctx context.Context, hotelID string, query entity.HotelReservationsQuery, headers entity.Headers) ([]byte, error)
	GetReservationsSummary(ctx context.Context, hotelID string, query entity.ReservationsSummaryQuery, headers entity.Headers) ([]byte, error)
	GetReservationStatistics(ctx context.Context, hotelID string, query entity.ReservationStatisticsQuery, headers entity.Headers) ([]byte, error)
	CreateReservation(ctx context.Context, hotelID string, body entity.CreateReservationRequest, headers entity.Headers) ([]byte, error)
	UpdateReservation(ctx context.Context, hotelID, reservationID string, body entity.CreateReservationRequest, headers entity.Headers) ([]byte, error)
	CancelReservation(ctx context.Context, hotelID, reservationID string, body entity.CancelReservationRequest, headers entity.Headers) ([]byte, error)
}
