package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"helpnest/database"
	"helpnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "assigned_to_public_id", Value: 1}}},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// providerFilter matches bookings assigned to the given provider public id.
// Records written before the schema rename carry the public id under
// "service_provider_unique_id"; this is the only place the legacy field name
// is consulted.
func providerFilter(publicID string) bson.M {
	return bson.M{"$or": []bson.M{
		{"assigned_to_public_id": publicID},
		{"service_provider_unique_id": publicID},
	}}
}

// normalize folds the legacy provider field into the current one so callers
// never see the old schema.
func normalize(b *models.Booking) {
	if b.AssignedTo == "" && b.LegacyAssignedTo != "" {
		b.AssignedTo = b.LegacyAssignedTo
	}
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its id.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	normalize(&b)
	return &b, nil
}

// ListByProviderPublicID retrieves every booking assigned to the provider,
// newest first.
func (r *MongoBookingRepo) ListByProviderPublicID(publicID string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, providerFilter(publicID), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for provider %s: %w", publicID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		normalize(&b)
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// UpdateStatus writes a new status onto a booking.
func (r *MongoBookingRepo) UpdateStatus(id, status string) error {
	return r.updateOne(id, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
}

// SetRating writes a customer rating onto a booking. Repeated ratings
// overwrite; the last score wins.
func (r *MongoBookingRepo) SetRating(id string, rating *models.Rating) error {
	return r.updateOne(id, bson.M{
		"$set": bson.M{"rating": rating, "updated_at": time.Now()},
	})
}

// AverageRating aggregates the mean score and count across all rated
// bookings referencing the provider.
func (r *MongoBookingRepo) AverageRating(providerID string) (float64, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"provider_id":  providerID,
			"rating.score": bson.M{"$exists": true},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$provider_id",
			"average": bson.M{"$avg": "$rating.score"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Average float64 `bson:"average"`
		Count   int64   `bson:"count"`
	}
	if !cursor.Next(ctx) {
		return 0, 0, nil
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, 0, fmt.Errorf("failed to decode rating aggregate: %w", err)
	}
	return result.Average, result.Count, nil
}

func (r *MongoBookingRepo) updateOne(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}
