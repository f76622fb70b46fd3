package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mamanmange/internal/models"
)

type DishStore struct {
	db *mongo.Database
}

func NewDishStore(db *mongo.Database) *DishStore {
	return &DishStore{db: db}
}

// FetchAll returns every dish, newest first. When availableOnly is set the
// result is what the public menu shows.
func (s *DishStore) FetchAll(ctx context.Context, availableOnly bool) ([]models.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	filter := bson.M{}
	if availableOnly {
		filter["available"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.db.Collection("dishes").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dishes []models.Dish
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *DishStore) Insert(ctx context.Context, dish models.Dish) (models.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("dishes").InsertOne(ctx, dish)
	if err != nil {
		return models.Dish{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		dish.ID = id
	}
	return dish, nil
}

// Update rewrites the editable fields of the dish and returns the updated
// document.
func (s *DishStore) Update(ctx context.Context, id primitive.ObjectID, dish models.Dish) (models.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var updated models.Dish
	err := s.db.Collection("dishes").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":        dish.Name,
			"description": dish.Description,
			"price":       dish.Price,
			"image":       dish.Image,
			"category":    dish.Category,
			"available":   dish.Available,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Dish{}, err
	}
	return updated, nil
}

// SetAvailability toggles the dish on or off the public menu without touching
// the document otherwise.
func (s *DishStore) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) (models.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var updated models.Dish
	err := s.db.Collection("dishes").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"available": available}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Dish{}, err
	}
	return updated, nil
}

func (s *DishStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("dishes").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
