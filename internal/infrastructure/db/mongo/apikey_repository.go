package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

const apiKeysCollection = "api_keys"

type MongoAPIKeyRepository struct {
	coll *mongo.Collection
}

func NewAPIKeyRepository(db *mongo.Database) *MongoAPIKeyRepository {
	return &MongoAPIKeyRepository{coll: db.Collection(apiKeysCollection)}
}

type apiKeyDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	HashedKey  string             `bson:"hashed_key"`
	UserID     string             `bson:"user_id"`
	LastUsedAt *time.Time         `bson:"last_used_at,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (d apiKeyDoc) toDomain() *domain.APIKey {
	return &domain.APIKey{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		HashedKey:  d.HashedKey,
		UserID:     d.UserID,
		LastUsedAt: d.LastUsedAt,
		CreatedAt:  unixToTime(d.CreatedAt),
	}
}

func (r *MongoAPIKeyRepository) Insert(ctx context.Context, key *domain.APIKey) (*domain.APIKey, error) {
	doc := apiKeyDoc{
		Name:      key.Name,
		HashedKey: key.HashedKey,
		UserID:    key.UserID,
		CreatedAt: key.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAPIKeyExists
		}
		return nil, fmt.Errorf("insert api key: %w", err)
	}

	created := *key
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAPIKeyRepository) FindByHash(ctx context.Context, hashedKey string) (*domain.APIKey, error) {
	var doc apiKeyDoc
	if err := r.coll.FindOne(ctx, bson.M{"hashed_key": hashedKey}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("find api key: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoAPIKeyRepository) ListByUser(ctx context.Context, userID string) ([]domain.APIKey, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	defer cur.Close(ctx)

	var keys []domain.APIKey
	for cur.Next(ctx) {
		var doc apiKeyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("list api keys: decode: %w", err)
		}
		keys = append(keys, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	return keys, nil
}

func (r *MongoAPIKeyRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAPIKeyNotFound
	}

	// Owner-scoped: a user can only delete their own keys.
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAPIKeyNotFound
	}
	return nil
}

func (r *MongoAPIKeyRepository) RecordUsage(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAPIKeyNotFound
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"last_used_at": at,
	}})
	if err != nil {
		return fmt.Errorf("record api key usage: %w", err)
	}
	return nil
}
