package accountRepo

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

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	coll := database.Collection("accounts")
	repo := &MongoAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// excludePassword keeps hashed passwords out of results served to clients.
var excludePassword = bson.M{"password_hash": 0}

// ensureIndexes creates indexes for fields frequently used in queries.
// Email uniqueness is scoped per role; the same address may register once
// as a driver and once as a maid.
func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "public_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(acc *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, acc)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByEmail retrieves an account by email scoped to a role (full document).
func (r *MongoAccountRepo) GetByEmail(role, email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acc models.Account
	err := r.coll.FindOne(ctx, bson.M{"role": role, "email": email}).Decode(&acc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &acc, nil
}

// GetByPublicID retrieves an account by public id scoped to a role, with the
// password hash excluded.
func (r *MongoAccountRepo) GetByPublicID(role, publicID string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(excludePassword)

	var acc models.Account
	err := r.coll.FindOne(ctx, bson.M{"role": role, "public_id": publicID}, opts).Decode(&acc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with public id %s: %w", publicID, err)
	}
	return &acc, nil
}

// PublicIDExists reports whether any account, of either role, holds the
// given public id.
func (r *MongoAccountRepo) PublicIDExists(publicID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"public_id": publicID})
	if err != nil {
		return false, fmt.Errorf("failed to check public id %s: %w", publicID, err)
	}
	return count > 0, nil
}

// List retrieves accounts filtered by role and availability. An empty role
// matches both kinds.
func (r *MongoAccountRepo) List(role string, onlyAvailable bool) ([]models.Account, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if onlyAvailable {
		filter["is_available"] = true
	}

	opts := options.Find().SetProjection(excludePassword)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	for cursor.Next(ctx) {
		var a models.Account
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// AppendBooking adds a booking id to the account's booking list.
func (r *MongoAccountRepo) AppendBooking(accountID, bookingID string) error {
	return r.updateOne(accountID, bson.M{
		"$push": bson.M{"bookings": bookingID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

// SetRating writes a recomputed average rating onto the account.
func (r *MongoAccountRepo) SetRating(accountID string, rating float64) error {
	return r.updateOne(accountID, bson.M{
		"$set": bson.M{"rating": rating, "updated_at": time.Now()},
	})
}

// SetAvailability toggles the account's availability flag.
func (r *MongoAccountRepo) SetAvailability(accountID string, available bool) error {
	return r.updateOne(accountID, bson.M{
		"$set": bson.M{"is_available": available, "updated_at": time.Now()},
	})
}

func (r *MongoAccountRepo) updateOne(accountID string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": accountID}, update)
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", accountID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", accountID)
	}
	return nil
}
