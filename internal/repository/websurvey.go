package repository

import (
	"context"
	"errors"

	"github.com/eventware/survey-go/internal/domain/websurvey"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WebSurveyRepo interface {
	Insert(ctx context.Context, s *websurvey.Survey) (string, error)
	FindByID(ctx context.Context, id string) (*websurvey.Survey, error)
	Find(ctx context.Context, skip, limit int64) ([]websurvey.Survey, error)
	Count(ctx context.Context) (int64, error)
}

type MongoWebSurveyRepo struct {
	collection *mongo.Collection
}

func NewWebSurveyRepo(database *mongo.Database) *MongoWebSurveyRepo {
	return &MongoWebSurveyRepo{collection: database.Collection(WebsiteSurveyCollection)}
}

func (r *MongoWebSurveyRepo) Insert(ctx context.Context, s *websurvey.Survey) (string, error) {
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

func (r *MongoWebSurveyRepo) FindByID(ctx context.Context, id string) (*websurvey.Survey, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var s websurvey.Survey
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoWebSurveyRepo) Find(ctx context.Context, skip, limit int64) ([]websurvey.Survey, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []websurvey.Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *MongoWebSurveyRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
