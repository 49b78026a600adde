package entity

import "time"

// PropertiesSummaryQuery is the validated query of GET /api/content/v1/hotels
type PropertiesSummaryQuery struct {
	ConnectionStatusLastChangedFrom *time.Time `form:"connectionStatusLastChangedFrom"`
	ConnectionStatusLastChangedTo   *time.Time `form:"connectionStatusLastChangedTo"`
	ConnectionStatus                *string    `form:"connectionStatus"`
	FetchInstructions               *string    `form:"fetchInstructions"`
	Limit                           *int       `form:"limit" binding:"omitnil,min=1"`
	Offset                          *int       `form:"offset" binding:"omitnil,min=0"`
}

// RoomTypesQuery is the validated query of GET /api/content/v1/hotels/:hotelCode/room-types
type RoomTypesQuery struct {
	IncludeRoomAmenities *bool   `form:"includeRoomAmenities"`
	RoomType             *string `form:"roomType"`
	Limit                *int    `form:"limit" binding:"omitnil,min=1"`
	Offset               *int    `form:"offset" binding:"omitnil,min=0"`
}

// PropertyInfoSummary is one hotel in the content listing
type PropertyInfoSummary struct {
	HotelID   *string  `json:"hotelId,omitempty"`
	HotelCode *string  `json:"hotelCode,omitempty"`
	HotelName *string  `json:"hotelName,omitempty"`
	ChainCode *string  `json:"chainCode,omitempty"`
	BrandCode *string  `json:"brandCode,omitempty"`
	StartDate *string  `json:"startDate,omitempty"`
	EndDate   *string  `json:"endDate,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// PropertyInfoSummaryResponse is a page of hotels
type PropertyInfoSummaryResponse struct {
	HasMore      *bool                 `json:"hasMore,omitempty"`
	TotalResults *int                  `json:"totalResults,omitempty"`
	Limit        *int                  `json:"limit,omitempty"`
	Count        *int                  `json:"count,omitempty"`
	Offset       *int                  `json:"offset,omitempty"`
	Hotels       []PropertyInfoSummary `json:"hotels"`
}

// PointOfInterest is a landmark near a property
type PointOfInterest struct {
	Name     *string  `json:"name,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
}

// PropertyInfo is the full content record of a hotel
type PropertyInfo struct {
	HotelID            *string           `json:"hotelId,omitempty"`
	EnterpriseID       *string           `json:"enterpriseId,omitempty"`
	HotelCode          *string           `json:"hotelCode,omitempty"`
	HotelName          *string           `json:"hotelName,omitempty"`
	HotelDescription   *string           `json:"hotelDescription,omitempty"`
	ChainCode          *string           `json:"chainCode,omitempty"`
	ClusterCode        *string           `json:"clusterCode,omitempty"`
	Address            *Address          `json:"address,omitempty"`
	Latitude           *float64          `json:"latitude,omitempty"`
	Longitude          *float64          `json:"longitude,omitempty"`
	PropertyAmenities  []CodeDescription `json:"propertyAmenities,omitempty"`
	PointOfInterest    []PointOfInterest `json:"pointOfInterest,omitempty"`
	MarketingMessage   *string           `json:"marketingMessage,omitempty"`
	CurrencyCode       *string           `json:"currencyCode,omitempty"`
	PrimaryLanguage    *string           `json:"primaryLanguage,omitempty"`
	TotalNumberOfRooms *int              `json:"totalNumberOfRooms,omitempty"`
	PetPolicy          *string           `json:"petPolicy,omitempty"`
}

// PropertyInfoResponse wraps a single hotel
type PropertyInfoResponse struct {
	PropertyInfo *PropertyInfo `json:"propertyInfo"`
}

// RoomType is a room type of a hotel
type RoomType struct {
	HotelRoomType *string  `json:"hotelRoomType,omitempty"`
	RoomType      *string  `json:"roomType,omitempty"`
	Description   []string `json:"description,omitempty"`
	RoomName      *string  `json:"roomName,omitempty"`
	RoomCategory  *string  `json:"roomCategory,omitempty"`
}

// RoomTypesResponse is a page of room types
type RoomTypesResponse struct {
	RoomTypes    []RoomType `json:"roomTypes"`
	Count        *int       `json:"count,omitempty"`
	HasMore      *bool      `json:"hasMore,omitempty"`
	Limit        *int       `json:"limit,omitempty"`
	Offset       *int       `json:"offset,omitempty"`
	TotalResults *int       `json:"totalResults,omitempty"`
}
