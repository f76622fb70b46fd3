package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mamanmange/internal/events"
	"mamanmange/internal/models"
)

type ReviewStore struct {
	db  *mongo.Database
	pub events.Publisher
}

func NewReviewStore(db *mongo.Database, pub events.Publisher) *ReviewStore {
	return &ReviewStore{db: db, pub: pub}
}

// FetchAll returns every review, newest first.
func (s *ReviewStore) FetchAll(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.db.Collection("reviews").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) Insert(ctx context.Context, review models.Review) (models.Review, error) {
	insertCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("reviews").InsertOne(insertCtx, review)
	if err != nil {
		return models.Review{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = id
	}

	s.publish(ctx, events.ActionInsert, review.ID, review)
	return review, nil
}

func (s *ReviewStore) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	updateCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var updated models.Review
	err := s.db.Collection("reviews").FindOneAndUpdate(
		updateCtx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return err
	}

	s.publish(ctx, events.ActionUpdate, updated.ID, updated)
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleteCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("reviews").DeleteOne(deleteCtx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	s.publish(ctx, events.ActionDelete, id, nil)
	return nil
}

func (s *ReviewStore) publish(ctx context.Context, action events.Action, id primitive.ObjectID, record interface{}) {
	if s.pub == nil {
		return
	}
	evt, err := events.NewChange(events.CollectionReviews, action, id.Hex(), record)
	if err != nil {
		log.Println("[REVIEW] [ERROR] change event marshal failed:", err)
		return
	}
	if err := events.PublishChange(ctx, s.pub, evt); err != nil {
		log.Println("[REVIEW] [ERROR] change event publish failed:", err)
	}
}
