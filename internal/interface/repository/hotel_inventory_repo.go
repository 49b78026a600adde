package repository

import (
	"context"
	"net/http"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
)

// HotelInventoryAPI implements HotelInventoryRepository over the hotel API
type HotelInventoryAPI struct {
	client *HotelClient
}

// NewHotelInventoryAPI creates a new inventory repository
func NewHotelInventoryAPI(client *HotelClient) repository.HotelInventoryRepository {
	return &HotelInventoryAPI{client: client}
}

// GetInventoryStatistics calls GET /inv/v1/hotels/{hotelId}/inventoryStatistics
func (r *HotelInventoryAPI) GetInventoryStatistics(ctx context.Context, hotelID string, query entity.InventoryStatisticsQuery, headers entity.Headers) ([]byte, error) {
	q := newOutboundQuery()
	q.set("dateRangeStart", query.DateRangeStart)
	q.set("dateRangeEnd", query.DateRangeEnd)
	q.set("reportCode", query.ReportCode)
	q.repeated("parameterName", query.ParameterName)
	q.repeated("parameterValue", query.ParameterValue)

	var shape entity.InventoryStatistics
	return r.client.do(ctx, hotelCall{
		endpoint: "inventory.statistics",
		method:   http.MethodGet,
		path:     hotelPath("/inv/v1/hotels/%s/inventoryStatistics", hotelID),
		query:    q.values(),
		headers:  headers,
		shape:    &shape,
	})
}
