package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mamanmange/internal/models"
)

type SpecialtyStore struct {
	db *mongo.Database
}

func NewSpecialtyStore(db *mongo.Database) *SpecialtyStore {
	return &SpecialtyStore{db: db}
}

func (s *SpecialtyStore) FetchAll(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	cursor, err := s.db.Collection("specialties").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, err
	}
	return specialties, nil
}

func (s *SpecialtyStore) Insert(ctx context.Context, specialty models.Specialty) (models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("specialties").InsertOne(ctx, specialty)
	if err != nil {
		return models.Specialty{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		specialty.ID = id
	}
	return specialty, nil
}

func (s *SpecialtyStore) Update(ctx context.Context, id primitive.ObjectID, specialty models.Specialty) (models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var updated models.Specialty
	err := s.db.Collection("specialties").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":       specialty.Title,
			"description": specialty.Description,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Specialty{}, err
	}
	return updated, nil
}

func (s *SpecialtyStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("specialties").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
