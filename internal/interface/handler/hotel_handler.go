package handler

import (
	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/usecase"
	"partner-portal-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HotelHandler serves the hotel API proxy routes
type HotelHandler struct {
	availability *usecase.HotelAvailabilityService
	shop         *usecase.HotelShopService
	content      *usecase.HotelContentService
	inventory    *usecase.HotelInventoryService
	reservations *usecase.HotelReservationsService
	logger       logger.Logger
}

// NewHotelHandler creates a new hotel proxy handler
func NewHotelHandler(
	availability *usecase.HotelAvailabilityService,
	shop *usecase.HotelShopService,
	content *usecase.HotelContentService,
	inventory *usecase.HotelInventoryService,
	reservations *usecase.HotelReservationsService,
	logger logger.Logger,
) *HotelHandler {
	return &HotelHandler{
		availability: availability,
		shop:         shop,
		content:      content,
		inventory:    inventory,
		reservations: reservations,
		logger:       logger,
	}
}

func (h *HotelHandler) respond(c *gin.Context, body []byte, err error) {
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	writeUpstream(c, body)
}

// SearchProperties handles GET /api/shop/v1/hotels
func (h *HotelHandler) SearchProperties(c *gin.Context) {
	var query entity.PropertySearchQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.availability.SearchProperties(c.Request.Context(), query, c.Request.Header)
	h.respond(c, body, err)
}

// GetPropertyOffers handles GET /api/shop/v1/hotels/:hotelCode/offers
func (h *HotelHandler) GetPropertyOffers(c *gin.Context) {
	var query entity.PropertyOffersQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.shop.GetPropertyOffers(c.Request.Context(), c.Param("hotelCode"), query, c.Request.Header)
	h.respond(c, body, err)
}

// GetOfferDetails handles GET /api/shop/v1/hotels/:hotelCode/offer
func (h *HotelHandler) GetOfferDetails(c *gin.Context) {
	var query entity.OfferDetailsQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.shop.GetOfferDetails(c.Request.Context(), c.Param("hotelCode"), query, c.Request.Header)
	h.respond(c, body, err)
}

// ListProperties handles GET /api/content/v1/hotels
func (h *HotelHandler) ListProperties(c *gin.Context) {
	var query entity.PropertiesSummaryQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.content.ListProperties(c.Request.Context(), query, c.Request.Header)
	h.respond(c, body, err)
}

// GetProperty handles GET /api/content/v1/hotels/:hotelCode
func (h *HotelHandler) GetProperty(c *gin.Context) {
	body, err := h.content.GetProperty(c.Request.Context(), c.Param("hotelCode"), c.Request.Header)
	h.respond(c, body, err)
}

// GetRoomTypes handles GET /api/content/v1/hotels/:hotelCode/room-types
func (h *HotelHandler) GetRoomTypes(c *gin.Context) {
	var query entity.RoomTypesQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.content.GetRoomTypes(c.Request.Context(), c.Param("hotelCode"), query, c.Request.Header)
	h.respond(c, body, err)
}

// GetInventoryStatistics handles GET /api/inv/v1/hotels/:hotelId/inventory-statistics
func (h *HotelHandler) GetInventoryStatistics(c *gin.Context) {
	var query entity.InventoryStatisticsQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.inventory.GetInventoryStatistics(c.Request.Context(), c.Param("hotelId"), query, c.Request.Header)
	h.respond(c, body, err)
}

// ListReservations handles GET /api/rsv/v1/hotels/:hotelId/reservations
func (h *HotelHandler) ListReservations(c *gin.Context) {
	var query entity.HotelReservationsQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.reservations.ListReservations(c.Request.Context(), c.Param("hotelId"), query, c.Request.Header)
	h.respond(c, body, err)
}

// GetReservationsSummary handles GET /api/rsv/v1/hotels/:hotelId/reservations/summary
func (h *HotelHandler) GetReservationsSummary(c *gin.Context) {
	var query entity.ReservationsSummaryQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.reservations.GetReservationsSummary(c.Request.Context(), c.Param("hotelId"), query, c.Request.Header)
	h.respond(c, body, err)
}

// GetReservationStatistics handles GET /api/rsv/v1/hotels/:hotelId/reservations/statistics
func (h *HotelHandler) GetReservationStatistics(c *gin.Context) {
	var query entity.ReservationStatisticsQuery
	if err := bindQuery(c, &query); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.reservations.GetReservationStatistics(c.Request.Context(), c.Param("hotelId"), query, c.Request.Header)
	h.respond(c, body, err)
}

// CreateReservation handles POST /api/rsv/v1/hotels/:hotelId/reservations
func (h *HotelHandler) CreateReservation(c *gin.Context) {
	var req entity.CreateReservationRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.reservations.CreateReservation(c.Request.Context(), c.Param("hotelId"), req, c.Request.Header)
	h.respond(c, body, err)
}

// UpdateReservation handles PUT /api/rsv/v1/hotels/:hotelId/reservations/:reservationId
func (h *HotelHandler) UpdateReservation(c *gin.Context) {
	var req entity.CreateReservationRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.reservations.UpdateReservation(c.Request.Context(), c.Param("hotelId"), c.Param("reservationId"), req, c.Request.Header)
	h.respond(c, body, err)
}

// CancelReservation handles POST /api/rsv/v1/hotels/:hotelId/reservations/:reservationId/cancellations
func (h *HotelHandler) CancelReservation(c *gin.Context) {
	var req entity.CancelReservationRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	body, err := h.reservations.CancelReservation(c.Request.Context(), c.Param("hotelId"), c.Param("reservationId"), req, c.Request.Header)
	h.respond(c, body, err)
}
