package entity

// Report codes accepted by the inventory statistics endpoint.
// The spelling of DetailedAvailabiltySummary matches the hotel API.
const (
	ReportDetailedAvailabilitySummary = "DetailedAvailabiltySummary"
	ReportRoomCalendarStatistics      = "RoomCalendarStatistics"
	ReportSellLimitSummary            = "SellLimitSummary"
	ReportRoomsAvailabilitySummary    = "RoomsAvailabilitySummary"
)

// InventoryStatisticsQuery is the validated query of
// GET /api/inv/v1/hotels/:hotelId/inventory-statistics
type InventoryStatisticsQuery struct {
	DateRangeStart string   `form:"dateRangeStart" binding:"required,datetime=2006-01-02"`
	DateRangeEnd   string   `form:"dateRangeEnd" binding:"required,datetime=2006-01-02"`
	ReportCode     string   `form:"reportCode" binding:"required,oneof=DetailedAvailabiltySummary RoomCalendarStatistics SellLimitSummary RoomsAvailabilitySummary"`
	ParameterName  []string `form:"parameterName"`
	ParameterValue []string `form:"parameterValue"`
}

// NumericCategorySummary is a count for one category, e.g. rooms occupied
type NumericCategorySummary struct {
	Value *float64 `json:"value,omitempty"`
	Code  *string  `json:"code,omitempty"`
}

// RevenueCategorySummary is a revenue amount for one category
type RevenueCategorySummary struct {
	Code         *string  `json:"code,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	CurrencyCode *string  `json:"currencyCode,omitempty"`
}

// StatisticSet is the statistic for a single date
type StatisticSet struct {
	Revenue       []RevenueCategorySummary `json:"revenue,omitempty"`
	Inventory     []NumericCategorySummary `json:"inventory,omitempty"`
	StatisticDate *string                  `json:"statisticDate,omitempty"`
	WeekendDate   *bool                    `json:"weekendDate,omitempty"`
}

// StatisticCode groups statistic sets under a code
type StatisticCode struct {
	StatisticDate    []StatisticSet `json:"statisticDate,omitempty"`
	StatCode         *string        `json:"statCode,omitempty"`
	StatCategoryCode *string        `json:"statCategoryCode,omitempty"`
	StatCodeClass    *string        `json:"statCodeClass,omitempty"`
	Description      *string        `json:"description,omitempty"`
}

// Statistic is one report of the inventory statistics response
type Statistic struct {
	Statistics  []StatisticCode `json:"statistics,omitempty"`
	HotelName   *string         `json:"hotelName,omitempty"`
	ReportCode  *string         `json:"reportCode,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// InventoryStatistics is the upstream answer: a JSON array of reports
type InventoryStatistics []Statistic
