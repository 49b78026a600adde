package repository

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelContentAPI implements HotelContentRepository over the hotel API
type HotelContentAPI struct {
	client *HotelClient
}

// NewHotelContentAPI creates a new content repository
func NewHotelContentAPI(client *HotelClient) repository.HotelContentRepository {
	return &HotelContentAPI{client: client}
}

// ListProperties calls GET /content/v1/hotels
func (r *HotelContentAPI) ListProperties(ctx context.Context, query entity.PropertiesSummaryQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.timestamp("connectionStatusLastChangedFrom", query.ConnectionStatusLastChangedFrom)
	q.timestamp("connectionStatusLastChangedTo", query.ConnectionStatusLastChangedTo)
	q.str("connectionStatus", query.ConnectionStatus)
	q.str("fetchInstructions", query.FetchInstructions)
	q.integer("limit", query.Limit)
	q.integer("offset", query.Offset)

	return r.client.do(ctx, hotelCall{
		endpoint: "content.hotels",
		method:   http.MethodGet,
		path:     "/content/v1/hotels",
		query:    q.values(),
		headers:  headers,
		shape:    &entity.PropertyInfoSummaryResponse{},
	})
}

// GetProperty calls GET /content/v1/hotels/{hotelCode}
func (r *HotelContentAPI) GetProperty(ctx context.Context, hotelCode string, headers entity.Headers) ([]byte, error) {
	return r.client.do(ctx, hotelCall{
		endpoint: "content.hotel",
		method:   http.MethodGet,
		path:     hotelPath("/content/v1/hotels/%s", hotelCode),
		headers:  headers,
		shape:    &entity.PropertyInfoResponse{},
	})
}

// GetRoomTypes calls GET /content/v1/hotels/{hotelCode}/roomTypes
func (r *HotelContentAPI) GetRoomTypes(ctx context.Context, hotelCode string, query entity.RoomTypesQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.boolean("includeRoomAmenities", query.IncludeRoomAmenities)
	q.str("roomType", query.RoomType)
	q.integer("limit", query.Limit)
	q.integer("offset", query.Offset)

	return r.client.do(ctx, hotelCall{
		endpoint: "content.roomTypes",
		method:   http.MethodGet,
		path:     hotelPath("/content/v1/hotels/%s/roomTypes", hotelCode),
		query:    q.values(),
		headers:  headers,
		shape:    &entity.RoomTypesResponse{},
	})
}
