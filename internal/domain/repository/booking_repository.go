package repository

import (
	"context"
	"errors"

	"partner-portal-service/internal/domain/entity"
)

// ErrBookingNotFound is returned by a BookingRepository when no row matches the id
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking storage operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	// FindAll returns every booking, newest createdAt first
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id string) error
}
