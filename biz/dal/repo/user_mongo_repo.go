package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog_api/biz/model/convert"
	"blog_api/biz/model/domain"
	"blog_api/biz/model/errs"
	"blog_api/biz/model/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(storage.UserCollection)}
}

// EnsureIndexes creates the unique email index. It is idempotent.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	d := convert.UserDomainToDocument(u)
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now

	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return nil, err
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	d.ID = id
	return convert.UserDocumentToDomain(d), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *MongoUserRepository) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedID, err)
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*domain.User, error) {
	var d storage.UserDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserDocumentToDomain(&d), nil
}
