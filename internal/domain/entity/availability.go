package entity

// PropertySearchQuery is the validated query of GET /api/shop/v1/hotels
type PropertySearchQuery struct {
	HotelCodes            []string `form:"hotelCodes" binding:"required,min=1,dive,required"`
	ArrivalDate           string   `form:"arrivalDate" binding:"required,datetime=2006-01-02"`
	ArrivalDateTo         *string  `form:"arrivalDateTo" binding:"omitnil,datetime=2006-01-02"`
	DepartureDate         string   `form:"departureDate" binding:"required,datetime=2006-01-02"`
	Adults                *int     `form:"adults" binding:"omitnil,min=1"`
	Children              *int     `form:"children" binding:"omitnil,min=0"`
	ChildrenAges          []string `form:"childrenAges" binding:"omitempty,dive,numeric"`
	RatePlanCodes         []string `form:"ratePlanCodes"`
	AccessCode            *string  `form:"accessCode"`
	NumberOfUnits         *int     `form:"numberOfUnits" binding:"omitnil,min=1"`
	RateMode              *string  `form:"rateMode"`
	RatePlanCodeMatchOnly *bool    `form:"ratePlanCodeMatchOnly"`
	RatePlanType          *string  `form:"ratePlanType"`
	AvailableOnly         *bool    `form:"availableOnly"`
	MinRate               *float64 `form:"minRate" binding:"omitnil,gte=0"`
	MaxRate               *float64 `form:"maxRate" binding:"omitnil,gte=0"`
	AlternateOffers       *string  `form:"alternateOffers"`
	CommissionableStatus  *string  `form:"commissionableStatus"`
	PromotionCodes        []string `form:"promotionCodes"`
}

// HotelAvailabilityStatus is the availability of a property
type HotelAvailabilityStatus string

const (
	AvailableForSale HotelAvailabilityStatus = "AvailableForSale"
	NoAvailability   HotelAvailabilityStatus = "NoAvailability"
	NotFoundStatus   HotelAvailabilityStatus = "NotFound"
	OtherAvailable   HotelAvailabilityStatus = "OtherAvailable"
)

// Address is a postal address
type Address struct {
	Lines       []string `json:"lines,omitempty"`
	City        *string  `json:"city,omitempty"`
	PostalCode  *string  `json:"postalCode,omitempty"`
	CountryCode *string  `json:"countryCode,omitempty"`
	State       *string  `json:"state,omitempty"`
}

// PropertyOffersPropertyInfo is the basic property block of shop responses
type PropertyOffersPropertyInfo struct {
	HotelCode *string  `json:"hotelCode,omitempty"`
	HotelName *string  `json:"hotelName,omitempty"`
	ChainCode *string  `json:"chainCode,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// PropertySearchRatePlan is a rate plan in search results
type PropertySearchRatePlan struct {
	RatePlanCode *string  `json:"ratePlanCode,omitempty"`
	RatePlanName *string  `json:"ratePlanName,omitempty"`
	RatePlanType *string  `json:"ratePlanType,omitempty"`
	TotalAmount  *float64 `json:"totalAmount,omitempty"`
	CurrencyCode *string  `json:"currencyCode,omitempty"`
}

// OfferMinMaxTotal is one end of a rate range
type OfferMinMaxTotal struct {
	Amount       *float64 `json:"amount,omitempty"`
	CurrencyCode *string  `json:"currencyCode,omitempty"`
}

// PropertySearchRoomStay is one hotel in a property search
type PropertySearchRoomStay struct {
	PropertyInfo *PropertyOffersPropertyInfo `json:"propertyInfo,omitempty"`
	Availability *HotelAvailabilityStatus    `json:"availability,omitempty"`
	RatePlans    []PropertySearchRatePlan    `json:"ratePlans,omitempty"`
	MinRate      *OfferMinMaxTotal           `json:"minRate,omitempty"`
	MaxRate      *OfferMinMaxTotal           `json:"maxRate,omitempty"`
}

// PropertySearchResponse is the upstream answer to a property search
type PropertySearchResponse struct {
	RoomStays []PropertySearchRoomStay `json:"roomStays"`
}
