// Package store contains the MongoDB repositories. Writes on collections
// with a change feed (orders, messages, reviews) publish a notification after
// the database has acknowledged them; publishing is best-effort and never
// fails the originating call.
package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mamanmange/internal/events"
	"mamanmange/internal/models"
)

const storeTimeout = 5 * time.Second

type OrderStore struct {
	db  *mongo.Database
	pub events.Publisher
}

func NewOrderStore(db *mongo.Database, pub events.Publisher) *OrderStore {
	return &OrderStore{db: db, pub: pub}
}

// FetchAll returns every order, newest first.
func (s *OrderStore) FetchAll(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.db.Collection("orders").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert persists the order and returns it with the store-assigned id.
func (s *OrderStore) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	insertCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("orders").InsertOne(insertCtx, order)
	if err != nil {
		return models.Order{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}

	s.publish(ctx, events.ActionInsert, order.ID, order)
	return order, nil
}

// UpdateStatus sets the order's status. Any of the five statuses is accepted
// here; the admin interface is what limits which buttons exist per state.
func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	updateCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var updated models.Order
	err := s.db.Collection("orders").FindOneAndUpdate(
		updateCtx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return err
	}

	s.publish(ctx, events.ActionUpdate, updated.ID, updated)
	return nil
}

// Delete removes the order document.
func (s *OrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleteCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("orders").DeleteOne(deleteCtx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	s.publish(ctx, events.ActionDelete, id, nil)
	return nil
}

func (s *OrderStore) publish(ctx context.Context, action events.Action, id primitive.ObjectID, record interface{}) {
	if s.pub == nil {
		return
	}
	evt, err := events.NewChange(events.CollectionOrders, action, id.Hex(), record)
	if err != nil {
		log.Println("[ORDER] [ERROR] change event marshal failed:", err)
		return
	}
	if err := events.PublishChange(ctx, s.pub, evt); err != nil {
		log.Println("[ORDER] [ERROR] change event publish failed:", err)
	}
}
