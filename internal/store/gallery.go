package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mamanmange/internal/models"
)

type GalleryStore struct {
	db *mongo.Database
}

func NewGalleryStore(db *mongo.Database) *GalleryStore {
	return &GalleryStore{db: db}
}

// FetchAll returns the gallery in display order.
func (s *GalleryStore) FetchAll(ctx context.Context) ([]models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := s.db.Collection("gallery_images").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// Add appends the image after the current highest display order.
func (s *GalleryStore) Add(ctx context.Context, url string) (models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	nextOrder := 1
	var last models.GalleryImage
	err := s.db.Collection("gallery_images").FindOne(
		ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "displayOrder", Value: -1}}),
	).Decode(&last)
	if err == nil {
		nextOrder = last.DisplayOrder + 1
	} else if err != mongo.ErrNoDocuments {
		return models.GalleryImage{}, err
	}

	image := models.GalleryImage{URL: url, DisplayOrder: nextOrder}
	res, err := s.db.Collection("gallery_images").InsertOne(ctx, image)
	if err != nil {
		return models.GalleryImage{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		image.ID = id
	}
	return image, nil
}

// DeleteByURL removes the image with the given URL.
func (s *GalleryStore) DeleteByURL(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection("gallery_images").DeleteOne(ctx, bson.M{"url": url})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
