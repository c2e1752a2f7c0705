package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

const productsCollection = "products"

type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ShopifyID  string             `bson:"shopify_id"`
	CreatedBy  string             `bson:"created_by"`
	SalesCount int                `bson:"sales_count"`
	Image      string             `bson:"image,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (d productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:         d.ID.Hex(),
		ShopifyID:  d.ShopifyID,
		CreatedBy:  d.CreatedBy,
		SalesCount: d.SalesCount,
		Image:      d.Image,
		CreatedAt:  unixToTime(d.CreatedAt),
	}
}

func (r *MongoProductRepository) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := productDoc{
		ShopifyID:  product.ShopifyID,
		CreatedBy:  product.CreatedBy,
		SalesCount: product.SalesCount,
		Image:      product.Image,
		CreatedAt:  product.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *MongoProductRepository) FindByCreator(ctx context.Context, userID string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"created_by": userID}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *MongoProductRepository) FindBestsellers(ctx context.Context, userID string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"created_by": userID}, bson.D{{Key: "sales_count", Value: -1}})
}

func (r *MongoProductRepository) FindByShopifyID(ctx context.Context, shopifyID string) (*domain.Product, error) {
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"shopify_id": shopifyID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoProductRepository) IncrementSales(ctx context.Context, id string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{
		"sales_count": quantity,
	}})
	if err != nil {
		return fmt.Errorf("increment sales: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("find products: decode: %w", err)
		}
		products = append(products, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return products, nil
}
