package handler

import (
	"net/http"
	"time"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/usecase"
	"partner-portal-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

const rfc3339Layout = "2006-01-02T15:04:05Z07:00"

// CreateBookingRequest is the body of POST /api/bookings
type CreateBookingRequest struct {
	PartnerID    string `json:"partnerId" binding:"required,uuid"`
	CustomerName string `json:"customerName" binding:"required,min=1"`
	ServiceType  string `json:"serviceType" binding:"required,min=1"`
	StartDate    string `json:"startDate" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate      string `json:"endDate" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpdateBookingRequest is the body of PUT /api/bookings/:id. Absent fields are left unchanged.
type UpdateBookingRequest struct {
	CustomerName *string `json:"customerName" binding:"omitnil,min=1"`
	ServiceType  *string `json:"serviceType" binding:"omitnil,min=1"`
	Status       *string `json:"status" binding:"omitnil,oneof=pending confirmed cancelled completed"`
	StartDate    *string `json:"startDate" binding:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate      *string `json:"endDate" binding:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
}

// BookingHandler serves /api/bookings
type BookingHandler struct {
	service *usecase.BookingService
	logger  logger.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *usecase.BookingService, logger logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// parseTimestamp parses a value already checked by the datetime rule
func parseTimestamp(value string) time.Time {
	t, _ := time.Parse(rfc3339Layout, value)
	return t
}

// List handles GET /api/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	booking, err := h.service.Create(c.Request.Context(), entity.CreateBookingData{
		PartnerID:    req.PartnerID,
		CustomerName: req.CustomerName,
		ServiceType:  req.ServiceType,
		StartDate:    parseTimestamp(req.StartDate),
		EndDate:      parseTimestamp(req.EndDate),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// Update handles PUT /api/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	data := entity.UpdateBookingData{
		CustomerName: req.CustomerName,
		ServiceType:  req.ServiceType,
	}
	if req.Status != nil {
		status := entity.BookingStatus(*req.Status)
		data.Status = &status
	}
	if req.StartDate != nil {
		t := parseTimestamp(*req.StartDate)
		data.StartDate = &t
	}
	if req.EndDate != nil {
		t := parseTimestamp(*req.EndDate)
		data.EndDate = &t
	}

	booking, err := h.service.Update(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /api/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
