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

type ResponseRepo interface {
	Insert(ctx context.Context, resp *survey.Response) (string, error)
	FindByID(ctx context.Context, id string) (*survey.Response, error)
	Find(ctx context.Context, templateID string, skip, limit int64) ([]survey.Response, error)
	Count(ctx context.Context, templateID string) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoResponseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(database *mongo.Database) *MongoResponseRepo {
	return &MongoResponseRepo{collection: database.Collection(ResponsesCollection)}
}

func (r *MongoResponseRepo) Insert(ctx context.Context, resp *survey.Response) (string, error) {
	result, err := r.collection.InsertOne(ctx, resp)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("inserted id is not an ObjectID")
	}
	return oid.Hex(), nil
}

func (r *MongoResponseRepo) FindByID(ctx context.Context, id string) (*survey.Response, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var resp survey.Response
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&resp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Find lists responses, optionally narrowed to one template. template_id is
// stored in string form, so the filter compares strings.
func (r *MongoResponseRepo) Find(ctx context.Context, templateID string, skip, limit int64) ([]survey.Response, error) {
	filter := bson.M{}
	if templateID != "" {
		filter["template_id"] = templateID
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := []survey.Response{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *MongoResponseRepo) Count(ctx context.Context, templateID string) (int64, error) {
	filter := bson.M{}
	if templateID != "" {
		filter["template_id"] = templateID
	}
	return r.collection.CountDocuments(ctx, filter)
}

func (r *MongoResponseRepo) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
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

func (r *MongoResponseRepo) Delete(ctx context.Context, id string) (bool, error) {
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
