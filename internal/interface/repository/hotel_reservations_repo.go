package repository

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelReservationsAPI implements HotelReservationsRepository over the hotel API
type HotelReservationsAPI struct {
	client *HotelClient
}

// NewHotelReservationsAPI creates a new reservations repository
func NewHotelReservationsAPI(client *HotelClient) repository.HotelReservationsRepository {
	return &HotelReservationsAPI{client: client}
}

// ListReservations calls GET /rsv/v1/hotels/{hotelId}/reservations
func (r *HotelReservationsAPI) ListReservations(ctx context.Context, hotelID string, query entity.HotelReservationsQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.str("surname", query.Surname)
	q.str("givenName", query.GivenName)
	q.str("arrivalStartDate", query.ArrivalStartDate)
	q.str("arrivalEndDate", query.ArrivalEndDate)
	q.repeated("confirmationNumberList", query.ConfirmationNumberList)
	q.integer("limit", query.Limit)
	q.integer("offset", query.Offset)

	return r.client.do(ctx, hotelCall{
		endpoint: "reservations.list",
		method:   http.MethodGet,
		path:     hotelPath("/rsv/v1/hotels/%s/reservations", hotelID),
		query:    q.values(),
		headers:  headers,
		shape:    &entity.ReservationListResponse{},
	})
}

// GetReservationsSummary calls GET /rsv/v1/hotels/{hotelId}/reservations/summary
func (r *HotelReservationsAPI) GetReservationsSummary(ctx context.Context, hotelID string, query entity.ReservationsSummaryQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.str("arrivalDate", query.ArrivalDate)
	q.str("lastName", query.LastName)
	q.integer("limit", query.Limit)
	q.integer("offset", query.Offset)

	return r.client.do(ctx, hotelCall{
		endpoint: "reservations.summary",
		method:   http.MethodGet,
		path:     hotelPath("/rsv/v1/hotels/%s/reservations/summary", hotelID),
		query:    q.values(),
		headers:  headers,
		shape:    &entity.ReservationSummaryResponse{},
	})
}

// GetReservationStatistics calls GET /rsv/v1/hotels/{hotelId}/reservations/statistics
func (r *HotelReservationsAPI) GetReservationStatistics(ctx context.Context, hotelID string, query entity.ReservationStatisticsQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.str("startDate", query.StartDate)
	q.str("endDate", query.EndDate)
	q.integer("limit", query.Limit)
	q.integer("offset", query.Offset)

	return r.client.do(ctx, hotelCall{
		endpoint: "reservations.statistics",
		method:   http.MethodGet,
		path:     hotelPath("/rsv/v1/hotels/%s/reservations/statistics", hotelID),
		query:    q.values(),
		headers:  headers,
		shape:    &entity.ReservationStatisticsResponse{},
	})
}

// CreateReservation calls POST /rsv/v1/hotels/{hotelId}/reservations
func (r *HotelReservationsAPI) CreateReservation(ctx context.Context, hotelID string, body entity.CreateReservationRequest, headers entity.Headers) ([]byte, error) {
	return r.client.do(ctx, hotelCall{
		endpoint: "reservations.create",
		method:   http.MethodPost,
		path:     hotelPath("/rsv/v1/hotels/%s/reservations", hotelID),
		body:     body,
		headers:  headers,
		shape:    &entity.ReservationListResponse{},
	})
}

// UpdateReservation calls PUT /rsv/v1/hotels/{hotelId}/reservations/{reservationId}
func (r *HotelReservationsAPI) UpdateReservation(ctx context.Context, hotelID, reservationID string, body entity.CreateReservationRequest, headers entity.Headers) ([]byte, error) {
	return r.client.do(ctx, hotelCall{
		endpoint: "reservations.update",
		method:   http.MethodPut,
		path:     hotelPath("/rsv/v1/hotels/%s/reservations/%s", hotelID, reservationID),
		body:     body,
		headers:  headers,
		shape:    &entity.ReservationListResponse{},
	})
}

// CancelReservation calls POST /rsv/v1/hotels/{hotelId}/reservations/{reservationId}/cancellations
func (r *HotelReservationsAPI) CancelReservation(ctx context.Context, hotelID, reservationID string, body entity.CancelReservationRequest, headers entity.Headers) ([]byte, error) {
	return r.client.do(ctx, hotelCall{
		endpoint: "reservations.cancel",
		method:   http.MethodPost,
		path:     hotelPath("/rsv/v1/hotels/%s/reservations/%s/cancellations", hotelID, reservationID),
		body:     body,
		headers:  headers,
		shape:    &entity.CancelReservationDetails{},
	})
}
