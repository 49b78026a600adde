package repository

import (
	"context"
	"errors"
	"fmt"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements the BookingRepository interface
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// bookingDocument is the stored form of a booking. Timestamps share the
// RFC 3339 text encoding of the SQL store.
type bookingDocument struct {
	ID           string `bson:"_id"`
	PartnerID    string `bson:"partnerId"`
	CustomerName string `bson:"customerName"`
	ServiceType  string `bson:"serviceType"`
	StartDate    string `bson:"startDate"`
	EndDate      string `bson:"endDate"`
	Status       string `bson:"status"`
	CreatedAt    string `bson:"createdAt"`
	UpdatedAt    string `bson:"updatedAt"`
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(ctx context.Context, db *mongo.Database) (repository.BookingRepository, error) {
	collection := db.Collection("bookings")

	// Index on createdAt for listing newest first
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	partnerIndex := mongo.IndexModel{
		Keys: bson.M{"partnerId": 1},
	}

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{createdAtIndex, partnerIndex}); err != nil {
		return nil, fmt.Errorf("failed to create booking indexes: %w", err)
	}

	return &MongoBookingRepository{
		collection: collection,
	}, nil
}

func toBookingDocument(b *entity.Booking) bookingDocument {
	m := toBookingModel(b)
	return bookingDocument{
		ID:           m.ID,
		PartnerID:    m.PartnerID,
		CustomerName: m.CustomerName,
		ServiceType:  m.ServiceType,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (d bookingDocument) toEntity() (*entity.Booking, error) {
	m := Bookings(d)
	return m.toEntity()
}

// Create inserts a new booking
func (r *MongoBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if _, err := r.collection.InsertOne(ctx, toBookingDocument(booking)); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// FindByID finds a booking by ID
func (r *MongoBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var doc bookingDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return doc.toEntity()
}

// FindAll lists bookings, newest first
func (r *MongoBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]*entity.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Update overwrites every mutable field of an existing booking
func (r *MongoBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	doc := toBookingDocument(booking)
	update := bson.M{
		"$set": bson.M{
			"customerName": doc.CustomerName,
			"serviceType":  doc.ServiceType,
			"startDate":    doc.StartDate,
			"endDate":      doc.EndDate,
			"status":       doc.Status,
			"updatedAt":    doc.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": booking.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking permanently
func (r *MongoBookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrBookingNotFound
	}
	return nil
}
