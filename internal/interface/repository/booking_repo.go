package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormBookingRepository implements the BookingRepository interface
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &GormBookingRepository{
		db: db,
	}
}

// Bookings GORM model for database mapping. Timestamps are kept as
// RFC 3339 text so the column layout is identical on sqlite and postgres.
type Bookings struct {
	ID           string `gorm:"column:id;primaryKey"`
	PartnerID    string `gorm:"column:partner_id;not null;index"`
	CustomerName string `gorm:"column:customer_name;not null"`
	ServiceType  string `gorm:"column:service_type;not null"`
	StartDate    string `gorm:"column:start_date;type:text;not null"`
	EndDate      string `gorm:"column:end_date;type:text;not null"`
	Status       string `gorm:"column:status;not null;default:pending"`
	CreatedAt    string `gorm:"column:created_at;type:text;not null;index;autoCreateTime:false"`
	UpdatedAt    string `gorm:"column:updated_at;type:text;not null;autoUpdateTime:false"`
}

// TableName overrides the default table name
func (Bookings) TableName() string {
	return "bookings"
}

// storedTimeLayout keeps nine fractional digits so stored values sort as text
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func parseTime(column, value string) (time.Time, error) {
	// RFC3339Nano also reads rows written with trimmed fractions
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t, nil
}

func toBookingModel(b *entity.Booking) *Bookings {
	return &Bookings{
		ID:           b.ID,
		PartnerID:    b.PartnerID,
		CustomerName: b.CustomerName,
		ServiceType:  b.ServiceType,
		StartDate:    formatTime(b.StartDate),
		EndDate:      formatTime(b.EndDate),
		Status:       string(b.Status),
		CreatedAt:    formatTime(b.CreatedAt),
		UpdatedAt:    formatTime(b.UpdatedAt),
	}
}

func (m *Bookings) toEntity() (*entity.Booking, error) {
	startDate, err := parseTime("start_date", m.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseTime("end_date", m.EndDate)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseTime("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime("updated_at", m.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &entity.Booking{
		ID:           m.ID,
		PartnerID:    m.PartnerID,
		CustomerName: m.CustomerName,
		ServiceType:  m.ServiceType,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       entity.BookingStatus(m.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// Create inserts a new booking
func (r *GormBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if err := r.db.WithContext(ctx).Create(toBookingModel(booking)).Error; err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// FindByID finds a booking by ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var model Bookings
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", result.Error)
	}

	return model.toEntity()
}

// FindAll lists bookings, newest first
func (r *GormBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	var models []Bookings
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*entity.Booking, 0, len(models))
	for i := range models {
		b, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Update overwrites every mutable column of an existing booking
func (r *GormBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	model := toBookingModel(booking)
	result := r.db.WithContext(ctx).Model(&Bookings{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
		"customer_name": model.CustomerName,
		"service_type":  model.ServiceType,
		"start_date":    model.StartDate,
		"end_date":      model.EndDate,
		"status":        model.Status,
		"updated_at":    model.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking permanently
func (r *GormBookingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Bookings{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}
	return nil
}
