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

const rolesCollection = "roles"

type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(rolesCollection)}
}

type roleDoc struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty"`
	Name                     string             `bson:"name"`
	CanPostLogin             bool               `bson:"can_post_login"`
	CanGetMyUser             bool               `bson:"can_get_my_user"`
	CanGetUsers              bool               `bson:"can_get_users"`
	CanPostProducts          bool               `bson:"can_post_products"`
	CanPostProductsWithImage bool               `bson:"can_post_products_with_image"`
	CanGetBestsellers        bool               `bson:"can_get_bestsellers"`
	CreatedAt                int64              `bson:"created_at"`
}

func (d roleDoc) toDomain() *domain.Role {
	return &domain.Role{
		ID:                       d.ID.Hex(),
		Name:                     d.Name,
		CanPostLogin:             d.CanPostLogin,
		CanGetMyUser:             d.CanGetMyUser,
		CanGetUsers:              d.CanGetUsers,
		CanPostProducts:          d.CanPostProducts,
		CanPostProductsWithImage: d.CanPostProductsWithImage,
		CanGetBestsellers:        d.CanGetBestsellers,
		CreatedAt:                unixToTime(d.CreatedAt),
	}
}

func (r *MongoRoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoleNotFound
	}

	var doc roleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var doc roleDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return doc.toDomain(), nil
}

// Ensure inserts the role unless one with the same name already exists.
// Existing flag values are left untouched so operator edits survive restarts.
func (r *MongoRoleRepository) Ensure(ctx context.Context, role *domain.Role) error {
	update := bson.M{"$setOnInsert": bson.M{
		"name":                         role.Name,
		"can_post_login":               role.CanPostLogin,
		"can_get_my_user":              role.CanGetMyUser,
		"can_get_users":                role.CanGetUsers,
		"can_post_products":            role.CanPostProducts,
		"can_post_products_with_image": role.CanPostProductsWithImage,
		"can_get_bestsellers":          role.CanGetBestsellers,
		"created_at":                   role.CreatedAt.Unix(),
	}}

	_, err := r.coll.UpdateOne(ctx, bson.M{"name": role.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("ensure role %s: %w", role.Name, err)
	}
	return nil
}
