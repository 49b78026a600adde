package handler

import (
	"net/http"
	"time"

	"partner-portal-service/internal/domain/apperror"
	"partner-portal-service/pkg/logger"
	"partner-portal-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the HTTP settings the router needs
type RouterConfig struct {
	CORSOrigins []string
	// Gatherer backs /metrics
	Gatherer prometheus.Gatherer
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter wires middleware and every route of the portal API
func NewRouter(cfg RouterConfig, bookings *BookingHandler, hotels *HotelHandler, log logger.Logger, m *metrics.Metrics) *gin.Engine {
	setupValidator()

	r := gin.New()
	r.Use(
		recoverMiddleware(log),
		loggerMiddleware(log),
		metricsMiddleware(m),
		corsMiddleware(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")

	b := api.Group("/bookings")
	b.GET("", bookings.List)
	b.POST("", bookings.Create)
	b.GET("/:id", bookings.Get)
	b.PUT("/:id", bookings.Update)
	b.DELETE("/:id", bookings.Delete)

	shop := api.Group("/shop/v1/hotels")
	shop.GET("", hotels.SearchProperties)
	shop.GET("/:hotelCode/offers", hotels.GetPropertyOffers)
	shop.GET("/:hotelCode/offer", hotels.GetOfferDetails)

	content := api.Group("/content/v1/hotels")
	content.GET("", hotels.ListProperties)
	content.GET("/:hotelCode", hotels.GetProperty)
	content.GET("/:hotelCode/room-types", hotels.GetRoomTypes)

	api.GET("/inv/v1/hotels/:hotelId/inventory-statistics", hotels.GetInventoryStatistics)

	rsv := api.Group("/rsv/v1/hotels/:hotelId/reservations")
	rsv.GET("", hotels.ListReservations)
	rsv.POST("", hotels.CreateReservation)
	rsv.GET("/summary", hotels.GetReservationsSummary)
	rsv.GET("/statistics", hotels.GetReservationStatistics)
	rsv.PUT("/:reservationId", hotels.UpdateReservation)
	rsv.POST("/:reservationId/cancellations", hotels.CancelReservation)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Route not found", Kind: apperror.KindNotFound})
	})

	return r
}
