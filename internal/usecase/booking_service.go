package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-portal-service/internal/domain/apperror"
	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"
	"partner-portal-service/pkg/logger"
	"partner-portal-service/pkg/metrics"

	"github.com/google/uuid"
)

const errEndBeforeStart = "End date must be after start date"

// BookingService implements booking CRUD on top of a BookingRepository
type BookingService struct {
	repo    repository.BookingRepository
	logger  logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.BookingRepository, logger logger.Logger, m *metrics.Metrics) *BookingService {
	return &BookingService{
		repo:    repo,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func validateDates(start, end time.Time) error {
	if !end.After(start) {
		return apperror.Validation(errEndBeforeStart, apperror.Issue{Path: "endDate", Message: errEndBeforeStart})
	}
	return nil
}

// storeError records a failed store call and tags it
func (s *BookingService) storeError(operation string, err error) error {
	if errors.Is(err, repository.ErrBookingNotFound) {
		return apperror.NotFound("Booking not found")
	}

	s.metrics.BookingStoreErrors.WithLabelValues(operation).Inc()
	s.logger.Error("Booking store failed", "operation", operation, "error", err)
	return apperror.Unknown(fmt.Errorf("%s booking: %w", operation, err))
}

// Create stores a new pending booking
func (s *BookingService) Create(ctx context.Context, data entity.CreateBookingData) (*entity.Booking, error) {
	if err := validateDates(data.StartDate, data.EndDate); err != nil {
		return nil, err
	}

	now := s.now()
	booking := &entity.Booking{
		ID:           s.newID(),
		PartnerID:    data.PartnerID,
		CustomerName: data.CustomerName,
		ServiceType:  data.ServiceType,
		StartDate:    data.StartDate.UTC(),
		EndDate:      data.EndDate.UTC(),
		Status:       entity.BookingPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, s.storeError("create", err)
	}

	s.logger.Info("Booking created", "id", booking.ID, "partnerId", booking.PartnerID)
	return booking, nil
}

// Get returns one booking
func (s *BookingService) Get(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeError("find", err)
	}
	return booking, nil
}

// List returns all bookings, newest first
func (s *BookingService) List(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.storeError("list", err)
	}
	return bookings, nil
}

// Update merges the supplied fields into an existing booking
func (s *BookingService) Update(ctx context.Context, id string, data entity.UpdateBookingData) (*entity.Booking, error) {
	if data.Status != nil && !data.Status.Valid() {
		msg := "Unknown booking status"
		return nil, apperror.Validation(msg, apperror.Issue{Path: "status", Message: msg})
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeError("find", err)
	}

	previous := booking.UpdatedAt
	data.Apply(booking)
	booking.StartDate = booking.StartDate.UTC()
	booking.EndDate = booking.EndDate.UTC()

	if err := validateDates(booking.StartDate, booking.EndDate); err != nil {
		return nil, err
	}

	// updatedAt must move forward even when the clock has not
	now := s.now()
	if !now.After(previous) {
		now = previous.Add(time.Microsecond)
	}
	booking.UpdatedAt = now

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, s.storeError("update", err)
	}

	s.logger.Info("Booking updated", "id", booking.ID, "status", booking.Status)
	return booking, nil
}

// Delete removes a booking
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeError("delete", err)
	}

	s.logger.Info("Booking deleted", "id", id)
	return nil
}
