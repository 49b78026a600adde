package entity

// HotelReservationsQuery is the validated query of GET /api/rsv/v1/hotels/:hotelId/reservations
type HotelReservationsQuery struct {
	Surname                *string  `form:"surname"`
	GivenName              *string  `form:"givenName"`
	ArrivalStartDate       *string  `form:"arrivalStartDate" binding:"omitnil,datetime=2006-01-02"`
	ArrivalEndDate         *string  `form:"arrivalEndDate" binding:"omitnil,datetime=2006-01-02"`
	ConfirmationNumberList []string `form:"confirmationNumberList"`
	Limit                  *int     `form:"limit" binding:"omitnil,min=1"`
	Offset                 *int     `form:"offset" binding:"omitnil,min=0"`
}

// ReservationsSummaryQuery is the validated query of
// GET /api/rsv/v1/hotels/:hotelId/reservations/summary
type ReservationsSummaryQuery struct {
	ArrivalDate *string `form:"arrivalDate" binding:"omitnil,datetime=2006-01-02"`
	LastName    *string `form:"lastName"`
	Limit       *int    `form:"limit" binding:"omitnil,min=1"`
	Offset      *int    `form:"offset" binding:"omitnil,min=0"`
}

// ReservationStatisticsQuery is the validated query of
// GET /api/rsv/v1/hotels/:hotelId/reservations/statistics
type ReservationStatisticsQuery struct {
	StartDate *string `form:"startDate" binding:"omitnil,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitnil,datetime=2006-01-02"`
	Limit     *int    `form:"limit" binding:"omitnil,min=1"`
	Offset    *int    `form:"offset" binding:"omitnil,min=0"`
}

// UniqueID is an identifier with its type, e.g. a confirmation number
type UniqueID struct {
	ID   *string `json:"id,omitempty"`
	Type *string `json:"type,omitempty"`
}

// PersonName is one name of a guest
type PersonName struct {
	GivenName  *string `json:"givenName,omitempty"`
	Surname    *string `json:"surname,omitempty"`
	NamePrefix *string `json:"namePrefix,omitempty"`
	MiddleName *string `json:"middleName,omitempty"`
	NameSuffix *string `json:"nameSuffix,omitempty"`
}

// Customer holds the names of a guest profile
type Customer struct {
	PersonName []PersonName `json:"personName,omitempty"`
}

// ProfileAddress is the postal address of a guest
type ProfileAddress struct {
	AddressLine []string `json:"addressLine,omitempty"`
	City        *string  `json:"city,omitempty"`
	PostalCode  *string  `json:"postalCode,omitempty"`
	CountryCode *string  `json:"countryCode,omitempty"`
	State       *string  `json:"state,omitempty"`
}

// Profile is a guest profile
type Profile struct {
	Customer    *Customer       `json:"customer,omitempty"`
	Email       *string         `json:"email,omitempty" binding:"omitnil,email"`
	PhoneNumber *string         `json:"phoneNumber,omitempty"`
	Address     *ProfileAddress `json:"address,omitempty"`
}

// ProfileInfo links a guest to its profile
type ProfileInfo struct {
	ProfileIDList []UniqueID `json:"profileIdList,omitempty"`
	Profile       *Profile   `json:"profile,omitempty"`
}

// ReservationGuest is a guest attached to a reservation
type ReservationGuest struct {
	ProfileInfo *ProfileInfo `json:"profileInfo,omitempty"`
	// Primary defaults to true when absent
	Primary *bool `json:"primary,omitempty"`
}

// PaymentCard guarantees a stay with a card
type PaymentCard struct {
	CardType       *string `json:"cardType,omitempty"`
	CardNumber     *string `json:"cardNumber,omitempty"`
	ExpireDate     *string `json:"expireDate,omitempty"`
	CardHolderName *string `json:"cardHolderName,omitempty"`
}

// Guarantee is the payment guarantee of a stay
type Guarantee struct {
	GuaranteeCode    *string      `json:"guaranteeCode,omitempty"`
	ShortDescription *string      `json:"shortDescription,omitempty"`
	PaymentCard      *PaymentCard `json:"paymentCard,omitempty"`
}

// GuestCounts is the number of guests of a stay
type GuestCounts struct {
	Adults       *int  `json:"adults,omitempty" binding:"omitnil,min=1"`
	Children     *int  `json:"children,omitempty" binding:"omitnil,min=0"`
	ChildrenAges []int `json:"childrenAges,omitempty"`
}

// RateTotal is an amount before and after tax
type RateTotal struct {
	AmountBeforeTax *float64 `json:"amountBeforeTax,omitempty"`
	AmountAfterTax  *float64 `json:"amountAfterTax,omitempty"`
	CurrencyCode    *string  `json:"currencyCode,omitempty"`
}

// Rate is the price of one night
type Rate struct {
	Base            *float64 `json:"base,omitempty"`
	AmountBeforeTax *float64 `json:"amountBeforeTax,omitempty"`
	AmountAfterTax  *float64 `json:"amountAfterTax,omitempty"`
	CurrencyCode    *string  `json:"currencyCode,omitempty"`
	EffectiveDate   *string  `json:"effectiveDate,omitempty"`
}

// RatesByDate lists the nightly rates of a room rate
type RatesByDate struct {
	Rate []Rate `json:"rate,omitempty"`
}

// RoomRate is the rate of a room type for a stay
type RoomRate struct {
	Total        *RateTotal   `json:"total,omitempty"`
	Rates        *RatesByDate `json:"rates,omitempty"`
	RoomType     *string      `json:"roomType,omitempty"`
	RatePlanCode *string      `json:"ratePlanCode,omitempty"`
	Start        *string      `json:"start,omitempty"`
	End          *string      `json:"end,omitempty"`
	GuestCounts  *GuestCounts `json:"guestCounts,omitempty"`
}

// RoomStay is the stay booked by a reservation
type RoomStay struct {
	ArrivalDate   *string      `json:"arrivalDate,omitempty"`
	DepartureDate *string      `json:"departureDate,omitempty"`
	Guarantee     *Guarantee   `json:"guarantee,omitempty"`
	RoomRates     []RoomRate   `json:"roomRates,omitempty" binding:"omitempty,dive"`
	GuestCounts   *GuestCounts `json:"guestCounts,omitempty"`
	RoomType      *string      `json:"roomType,omitempty"`
	RatePlanCode  *string      `json:"ratePlanCode,omitempty"`
	MarketCode    *string      `json:"marketCode,omitempty"`
	SourceCode    *string      `json:"sourceCode,omitempty"`
	Total         *RateTotal   `json:"total,omitempty"`
}

// Reservation is a hotel reservation as sent to the hotel API.
// Dates stay strings: the hotel API sends them without a zone offset.
type Reservation struct {
	ReservationIDList []UniqueID         `json:"reservationIdList,omitempty"`
	RoomStay          *RoomStay          `json:"roomStay,omitempty"`
	ReservationGuests []ReservationGuest `json:"reservationGuests,omitempty" binding:"omitempty,dive"`
	HotelID           *string            `json:"hotelId,omitempty"`
	ReservationStatus *string            `json:"reservationStatus,omitempty"`
	CreateDateTime    *string            `json:"createDateTime,omitempty"`
}

// ReservationCollection wraps the reservations of a request
type ReservationCollection struct {
	Reservation []Reservation `json:"reservation,omitempty" binding:"omitempty,dive"`
}

// CreateReservationRequest is the body of reservation create and update calls
type CreateReservationRequest struct {
	Reservations *ReservationCollection `json:"reservations" binding:"required"`
}

// MarkPrimaryGuests sets primary on every guest that did not say
func (r *CreateReservationRequest) MarkPrimaryGuests() {
	if r.Reservations == nil {
		return
	}
	for i := range r.Reservations.Reservation {
		guests := r.Reservations.Reservation[i].ReservationGuests
		for j := range guests {
			if guests[j].Primary == nil {
				primary := true
				guests[j].Primary = &primary
			}
		}
	}
}

// CancelReason explains a cancellation
type CancelReason struct {
	Description *string `json:"description,omitempty"`
	Code        *string `json:"code,omitempty"`
}

// CancelReservationRequest is the body of a cancellation
type CancelReservationRequest struct {
	Reason       *CancelReason    `json:"reason,omitempty"`
	Reservations []map[string]any `json:"reservations,omitempty"`
}

// ReservationRecords holds reservations returned by the hotel API.
// Records are not typed further: their timestamps carry no zone offset.
type ReservationRecords struct {
	Reservation []map[string]any `json:"reservation"`
}

// ReservationListResponse is the upstream answer of list, create and update
type ReservationListResponse struct {
	Reservations *ReservationRecords `json:"reservations"`
}

// ReservationSummary is one row of the reservation summary
type ReservationSummary struct {
	ReservationID      *string `json:"reservationId,omitempty"`
	ConfirmationNumber *string `json:"confirmationNumber,omitempty"`
	GuestName          *string `json:"guestName,omitempty"`
	ArrivalDate        *string `json:"arrivalDate,omitempty"`
	DepartureDate      *string `json:"departureDate,omitempty"`
	Status             *string `json:"status,omitempty"`
}

// ReservationSummaryResponse is the upstream answer of the summary endpoint
type ReservationSummaryResponse struct {
	Reservations []ReservationSummary `json:"reservations"`
}

// DistributionReservationSummary is one reservation in the statistics report
type DistributionReservationSummary struct {
	HotelID           *string `json:"hotelId,omitempty"`
	ChannelCode       *string `json:"channelCode,omitempty"`
	ArrivalDate       *string `json:"arrivalDate,omitempty"`
	DepartureDate     *string `json:"departureDate,omitempty"`
	CreationDate      *string `json:"creationDate,omitempty"`
	LastUpdateDate    *string `json:"lastUpdateDate,omitempty"`
	NumberOfRooms     *int    `json:"numberOfRooms,omitempty"`
	ReservationStatus *string `json:"reservationStatus,omitempty"`
	ConfirmationID    *string `json:"confirmationId,omitempty"`
	LegNumber         *string `json:"legNumber,omitempty"`
	ReservationID     *string `json:"reservationId,omitempty"`
	GuestName         *string `json:"guestName,omitempty"`
	CreatorID         *string `json:"creatorId,omitempty"`
}

// ReservationStatisticsResponse is the upstream answer of the statistics endpoint
type ReservationStatisticsResponse struct {
	CheckReservations []DistributionReservationSummary `json:"checkReservations"`
	HasMore           *bool                            `json:"hasMore,omitempty"`
}

// CancelReservationDetails is the upstream answer of a cancellation
type CancelReservationDetails struct {
	ReservationIDList  []UniqueID `json:"reservationIdList,omitempty"`
	CancellationNumber *UniqueID  `json:"cancellationNumber,omitempty"`
	Status             *string    `json:"status,omitempty"`
}
