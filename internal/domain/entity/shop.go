package entity

// PropertyOffersQuery is the validated query of GET /api/shop/v1/hotels/:hotelCode/offers
type PropertyOffersQuery struct {
	ArrivalDate           string   `form:"arrivalDate" binding:"required,datetime=2006-01-02"`
	DepartureDate         string   `form:"departureDate" binding:"required,datetime=2006-01-02"`
	Adults                *int     `form:"adults" binding:"omitnil,min=1"`
	Children              *int     `form:"children" binding:"omitnil,min=0"`
	ChildrenAges          []string `form:"childrenAges" binding:"omitempty,dive,numeric"`
	RoomTypes             []string `form:"roomTypes"`
	RatePlanCodes         []string `form:"ratePlanCodes"`
	AccessCode            *string  `form:"accessCode"`
	RatePlanType          *string  `form:"ratePlanType"`
	NumberOfUnits         *int     `form:"numberOfUnits" binding:"omitnil,min=1"`
	RoomTypeMatchOnly     *bool    `form:"roomTypeMatchOnly"`
	RatePlanCodeMatchOnly *bool    `form:"ratePlanCodeMatchOnly"`
	RateMode              *string  `form:"rateMode"`
	RoomAmenity           *string  `form:"roomAmenity"`
	RoomAmenityQuantity   *int     `form:"roomAmenityQuantity" binding:"omitnil,min=1"`
	IncludeAmenities      *bool    `form:"includeAmenities"`
	MinRate               *float64 `form:"minRate" binding:"omitnil,gte=0"`
	MaxRate               *float64 `form:"maxRate" binding:"omitnil,gte=0"`
	AlternateOffers       *string  `form:"alternateOffers"`
	CommissionableStatus  *string  `form:"commissionableStatus"`
	PromotionCodes        []string `form:"promotionCodes"`
	BlockCode             *string  `form:"blockCode"`
}

// OfferDetailsQuery is the validated query of GET /api/shop/v1/hotels/:hotelCode/offer
type OfferDetailsQuery struct {
	ArrivalDate      string   `form:"arrivalDate" binding:"required,datetime=2006-01-02"`
	DepartureDate    string   `form:"departureDate" binding:"required,datetime=2006-01-02"`
	Adults           *int     `form:"adults" binding:"omitnil,min=1"`
	Children         *int     `form:"children" binding:"omitnil,min=0"`
	ChildrenAges     []string `form:"childrenAges" binding:"omitempty,dive,numeric"`
	RoomType         *string  `form:"roomType"`
	RatePlanCode     *string  `form:"ratePlanCode"`
	AccessCode       *string  `form:"accessCode"`
	RateMode         *string  `form:"rateMode"`
	NumberOfUnits    *int     `form:"numberOfUnits" binding:"omitnil,min=1"`
	BookingCode      *string  `form:"bookingCode"`
	IncludeAmenities *bool    `form:"includeAmenities"`
	PromotionCodes   []string `form:"promotionCodes"`
	BlockCode        *string  `form:"blockCode"`
}

// Description is a free text block
type Description struct {
	Text *string `json:"text,omitempty"`
}

// OfferRatePlanCommission is the commission paid on a rate plan
type OfferRatePlanCommission struct {
	Percent      *float64 `json:"percent,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	CurrencyCode *string  `json:"currencyCode,omitempty"`
}

// CodeDescription is the common {code, description} pair
type CodeDescription struct {
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PromotionCodeItem is a promotion attached to a rate plan
type PromotionCodeItem struct {
	Code *string `json:"code,omitempty"`
	Name *string `json:"name,omitempty"`
}

// OfferRatePlan is a rate plan as returned by offer endpoints
type OfferRatePlan struct {
	RatePlanCode           *string                  `json:"ratePlanCode,omitempty"`
	RatePlanName           *string                  `json:"ratePlanName,omitempty"`
	RatePlanType           *string                  `json:"ratePlanType,omitempty"`
	AccessCode             *string                  `json:"accessCode,omitempty"`
	IdentificationRequired *bool                    `json:"identificationRequired,omitempty"`
	AccountID              *string                  `json:"accountId,omitempty"`
	RatePlanLevel          *string                  `json:"ratePlanLevel,omitempty"`
	RatePlanCategory       *string                  `json:"ratePlanCategory,omitempty"`
	GDSDescription         *Description             `json:"gdsDescription,omitempty"`
	Commissionable         *bool                    `json:"commissionable,omitempty"`
	CommissionDescription  *string                  `json:"commissionDescription,omitempty"`
	Commission             *OfferRatePlanCommission `json:"commission,omitempty"`
	Packages               []CodeDescription        `json:"packages,omitempty"`
	MealPlan               *CodeDescription         `json:"mealPlan,omitempty"`
	PromotionCodes         []PromotionCodeItem      `json:"promotionCodes,omitempty"`
}

// OfferRoomType is a room type as returned by offer endpoints
type OfferRoomType struct {
	RoomTypeCode *string `json:"roomTypeCode,omitempty"`
	RoomTypeName *string `json:"roomTypeName,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// Offer is a priced room/rate combination for a stay
type Offer struct {
	RatePlanCode *string                  `json:"ratePlanCode,omitempty"`
	RoomTypeCode *string                  `json:"roomTypeCode,omitempty"`
	TotalAmount  *float64                 `json:"totalAmount,omitempty"`
	CurrencyCode *string                  `json:"currencyCode,omitempty"`
	Availability *HotelAvailabilityStatus `json:"availability,omitempty"`
}

// PropertyOffersRoomStay is the offers block for one property
type PropertyOffersRoomStay struct {
	PropertyInfo *PropertyOffersPropertyInfo `json:"propertyInfo,omitempty"`
	Availability *HotelAvailabilityStatus    `json:"availability,omitempty"`
	Restrictions []CodeDescription           `json:"restrictions,omitempty"`
	RoomTypes    []OfferRoomType             `json:"roomTypes,omitempty"`
	RatePlans    []OfferRatePlan             `json:"ratePlans,omitempty"`
	Offers       []Offer                     `json:"offers,omitempty"`
}

// PropertyOffersResponse is the upstream answer to an offers search
type PropertyOffersResponse struct {
	RoomStays []PropertyOffersRoomStay `json:"roomStays"`
}

// OfferDetailsPropertyInfo is the property block of a single offer
type OfferDetailsPropertyInfo struct {
	HotelCode          *string  `json:"hotelCode,omitempty"`
	HotelName          *string  `json:"hotelName,omitempty"`
	ChainCode          *string  `json:"chainCode,omitempty"`
	Address            *Address `json:"address,omitempty"`
	GeneralInformation *struct {
		CheckInTime  *string `json:"checkInTime,omitempty"`
		CheckOutTime *string `json:"checkOutTime,omitempty"`
	} `json:"generalInformation,omitempty"`
	Communications *struct {
		Phone *string `json:"phone,omitempty"`
		Email *string `json:"email,omitempty"`
	} `json:"communications,omitempty"`
	Transportations []struct {
		Type        *string `json:"type,omitempty"`
		Description *string `json:"description,omitempty"`
	} `json:"transportations,omitempty"`
	Location *struct {
		Latitude  *float64 `json:"latitude,omitempty"`
		Longitude *float64 `json:"longitude,omitempty"`
	} `json:"location,omitempty"`
}

// OfferDetailsResponse is the upstream answer for a single offer
type OfferDetailsResponse struct {
	PropertyInfo *OfferDetailsPropertyInfo `json:"propertyInfo,omitempty"`
	Availability *HotelAvailabilityStatus  `json:"availability,omitempty"`
	RoomType     *OfferRoomType            `json:"roomType,omitempty"`
	RatePlan     *OfferRatePlan            `json:"ratePlan,omitempty"`
	Offer        *Offer                    `json:"offer,omitempty"`
}
