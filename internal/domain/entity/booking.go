package entity

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

// Booking statuses. Any status may be written by an update; no transition graph is enforced.
const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking represents a partner booking owned by the portal
type Booking struct {
	ID           string        `json:"id"`
	PartnerID    string        `json:"partnerId"`
	CustomerName string        `json:"customerName"`
	ServiceType  string        `json:"serviceType"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CreateBookingData is the input for a new booking
type CreateBookingData struct {
	PartnerID    string
	CustomerName string
	ServiceType  string
	StartDate    time.Time
	EndDate      time.Time
}

// UpdateBookingData holds the fields of a partial update. Nil means "leave unchanged".
type UpdateBookingData struct {
	CustomerName *string
	ServiceType  *string
	Status       *BookingStatus
	StartDate    *time.Time
	EndDate      *time.Time
}

// Apply merges the present fields into b
func (u UpdateBookingData) Apply(b *Booking) {
	if u.CustomerName != nil {
		b.CustomerName = *u.CustomerName
	}
	if u.ServiceType != nil {
		b.ServiceType = *u.ServiceType
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.StartDate != nil {
		b.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		b.EndDate = *u.EndDate
	}
}
