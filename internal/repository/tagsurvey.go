package repository

import (
	"context"
	"errors"

	"github.com/eventware/survey-go/internal/domain/tagsurvey"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TagSurveyRepo interface {
	Insert(ctx context.Context, s *tagsurvey.Survey) (string, error)
	FindByID(ctx context.Context, id string) (*tagsurvey.Survey, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]tagsurvey.Survey, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoTagSurveyRepo struct {
	collection *mongo.Collection
}

func NewTagSurveyRepo(database *mongo.Database) *MongoTagSurveyRepo {
	return &MongoTagSurveyRepo{collection: database.Collection(TagSurveyCollection)}
}

func (r *MongoTagSurveyRepo) Insert(ctx context.Context, s *tagsurvey.Survey) (string, error) {
	result, err := r.collection.InsertOne(ctx, s)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("inserted id is not an ObjectID")
	}
	return oid.Hex(), nil
}

func (r *MongoTagSurveyRepo) FindByID(ctx context.Context, id string) (*tagsurvey.Survey, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var s tagsurvey.Survey
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoTagSurveyRepo) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]tagsurvey.Survey, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []tagsurvey.Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *MongoTagSurveyRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoTagSurveyRepo) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
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

func (r *MongoTagSurveyRepo) Delete(ctx context.Context, id string) (bool, error) {
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
