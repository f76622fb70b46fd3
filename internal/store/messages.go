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

type MessageStore struct {
	db  *mongo.Database
	pub events.Publisher
}

func NewMessageStore(db *mongo.Database, pub events.Publisher) *MessageStore {
	return &MessageStore{db: db, pub: pub}
}

// FetchAll returns every contact message, newest first.
func (s *MessageStore) FetchAll(ctx context.Context) ([]models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.db.Collection("messages").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *MessageStore) Insert(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	insertCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("messages").InsertOne(insertCtx, message)
	if err != nil {
		return models.ContactMessage{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		message.ID = id
	}

	s.publish(ctx, events.ActionInsert, message.ID, message)
	return message, nil
}

// MarkRead flags the message as opened by the admin.
func (s *MessageStore) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	updateCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var updated models.ContactMessage
	err := s.db.Collection("messages").FindOneAndUpdate(
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

func (s *MessageStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleteCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("messages").DeleteOne(deleteCtx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	s.publish(ctx, events.ActionDelete, id, nil)
	return nil
}

func (s *MessageStore) publish(ctx context.Context, action events.Action, id primitive.ObjectID, record interface{}) {
	if s.pub == nil {
		return
	}
	evt, err := events.NewChange(events.CollectionMessages, action, id.Hex(), record)
	if err != nil {
		log.Println("[MESSAGE] [ERROR] change event marshal failed:", err)
		return
	}
	if err := events.PublishChange(ctx, s.pub, evt); err != nil {
		log.Println("[MESSAGE] [ERROR] change event publish failed:", err)
	}
}
