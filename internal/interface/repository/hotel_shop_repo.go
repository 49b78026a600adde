package repository

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelShopAPI implements HotelShopRepository over the hotel API
type HotelShopAPI struct {
	client *HotelClient
}

// NewHotelShopAPI creates a new shop repository
func NewHotelShopAPI(client *HotelClient) repository.HotelShopRepository {
	return &HotelShopAPI{client: client}
}

// GetPropertyOffers calls GET /shop/v1/hotels/{hotelCode}/offers
func (r *HotelShopAPI) GetPropertyOffers(ctx context.Context, hotelCode string, query entity.PropertyOffersQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.set("ArrivalDate", query.ArrivalDate)
	q.set("DepartureDate", query.DepartureDate)
	q.integer("Adults", query.Adults)
	q.integer("Children", query.Children)
	q.csv("ChildrenAges", query.ChildrenAges)
	q.csv("RoomTypes", query.RoomTypes)
	q.csv("RatePlanCodes", query.RatePlanCodes)
	q.str("AccessCode", query.AccessCode)
	q.str("RatePlanType", query.RatePlanType)
	q.integer("NumberOfUnits", query.NumberOfUnits)
	q.boolean("RoomTypeMatchOnly", query.RoomTypeMatchOnly)
	q.boolean("RatePlanCodeMatchOnly", query.RatePlanCodeMatchOnly)
	q.str("RateMode", query.RateMode)
	q.str("RoomAmenity", query.RoomAmenity)
	q.integer("RoomAmenityQuantity", query.RoomAmenityQuantity)
	q.boolean("IncludeAmenities", query.IncludeAmenities)
	q.number("minRate", query.MinRate)
	q.number("maxRate", query.MaxRate)
	q.str("AlternateOffers", query.AlternateOffers)
	q.str("CommissionableStatus", query.CommissionableStatus)
	q.csv("PromotionCodes", query.PromotionCodes)
	q.str("BlockCode", query.BlockCode)

	return r.client.do(ctx, hotelCall{
		endpoint: "shop.offers",
		method:   http.MethodGet,
		path:     hotelPath("/shop/v1/hotels/%s/offers", hotelCode),
		query:    q.values(),
		headers:  headers,
		shape:    &entity.PropertyOffersResponse{},
	})
}

// GetOfferDetails calls GET /shop/v1/hotels/{hotelCode}/offer
func (r *HotelShopAPI) GetOfferDetails(ctx context.Context, hotelCode string, query entity.OfferDetailsQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.set("ArrivalDate", query.ArrivalDate)
	q.set("DepartureDate", query.DepartureDate)
	q.integer("Adults", query.Adults)
	q.integer("Children", query.Children)
	q.csv("ChildrenAges", query.ChildrenAges)
	q.str("RoomType", query.RoomType)
	q.str("RatePlanCode", query.RatePlanCode)
	q.str("AccessCode", query.AccessCode)
	q.str("RateMode", query.RateMode)
	q.integer("NumberOfUnits", query.NumberOfUnits)
	q.str("BookingCode", query.BookingCode)
	q.boolean("IncludeAmenities", query.IncludeAmenities)
	q.csv("PromotionCodes", query.PromotionCodes)
	q.str("BlockCode", query.BlockCode)

	return r.client.do(ctx, hotelCall{
		endpoint: "shop.offer",
		method:   http.MethodGet,
		path:     hotelPath("/shop/v1/hotels/%s/offer", hotelCode),
		query:    q.values(),
		headers:  headers,
		shape:    &entity.OfferDetailsResponse{},
	})
}
