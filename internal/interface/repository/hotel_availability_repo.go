package repository

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelAvailabilityAPI implements HotelAvailabilityRepository over the hotel API
type HotelAvailabilityAPI struct {
	client *HotelClient
}

// NewHotelAvailabilityAPI creates a new availability repository
func NewHotelAvailabilityAPI(client *HotelClient) repository.HotelAvailabilityRepository {
	return &HotelAvailabilityAPI{client: client}
}

// SearchProperties calls GET /shop/v1/hotels
func (r *HotelAvailabilityAPI) SearchProperties(ctx context.Context, query entity.PropertySearchQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.csv("HotelCodes", query.HotelCodes)
	q.set("ArrivalDate", query.ArrivalDate)
	q.str("ArrivalDateTo", query.ArrivalDateTo)
	q.set("DepartureDate", query.DepartureDate)
	q.integer("Adults", query.Adults)
	q.integer("Children", query.Children)
	q.csv("ChildrenAges", query.ChildrenAges)
	q.csv("RatePlanCodes", query.RatePlanCodes)
	q.str("AccessCode", query.AccessCode)
	q.integer("NumberOfUnits", query.NumberOfUnits)
	q.str("RateMode", query.RateMode)
	q.boolean("RatePlanCodeMatchOnly", query.RatePlanCodeMatchOnly)
	q.str("RatePlanType", query.RatePlanType)
	q.boolean("AvailableOnly", query.AvailableOnly)
	q.number("minRate", query.MinRate)
	q.number("maxRate", query.MaxRate)
	q.str("AlternateOffers", query.AlternateOffers)
	q.str("CommissionableStatus", query.CommissionableStatus)
	q.csv("PromotionCodes", query.PromotionCodes)

	return r.client.do(ctx, hotelCall{
		endpoint: "availability.search",
		method:   http.MethodGet,
		path:     "/shop/v1/hotels",
		query:    q.values(),
		headers:  headers,
		shape:    &entity.PropertySearchResponse{},
	})
}
