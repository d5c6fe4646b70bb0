package repository

import (
	"context"
	"errors"

	"github.com/eventware/survey-go/internal/domain/survey"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TemplateRepo interface {
	Create(ctx context.Context, t *survey.Template) (string, error)
	FindByID(ctx context.Context, id string) (*survey.Template, error)
	Find(ctx context.Context, isActive *bool, skip, limit int64) ([]survey.Template, error)
	Count(ctx context.Context, isActive *bool) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	IncResponseCount(ctx context.Context, id string, delta int) error
}

type MongoTemplateRepo struct {
	collection *mongo.Collection
}

func NewTemplateRepo(database *mongo.Database) *MongoTemplateRepo {
	return &MongoTemplateRepo{collection: database.Collection(TemplatesCollection)}
}

func (r *MongoTemplateRepo) Create(ctx context.Context, t *survey.Template) (string, error) {
	result, err := r.collection.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("inserted id is not an ObjectID")
	}
	return oid.Hex(), nil
}

// FindByID returns (nil, nil) for unknown and malformed ids alike; a
// malformed id can never reference a document.
func (r *MongoTemplateRepo) FindByID(ctx context.Context, id string) (*survey.Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var t survey.Template
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *MongoTemplateRepo) Find(ctx context.Context, isActive *bool, skip, limit int64) ([]survey.Template, error) {
	filter := bson.M{}
	if isActive != nil {
		filter["is_active"] = *isActive
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	templates := []survey.Template{}
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *MongoTemplateRepo) Count(ctx context.Context, isActive *bool) (int64, error) {
	filter := bson.M{}
	if isActive != nil {
		filter["is_active"] = *isActive
	}
	return r.collection.CountDocuments(ctx, filter)
}

func (r *MongoTemplateRepo) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (r *MongoTemplateRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoTemplateRepo) IncResponseCount(ctx context.Context, id string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"response_count": delta}})
	return err
}
