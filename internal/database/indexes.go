package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	dateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("date_desc"),
	}

	log.Println("EnsureOrderIndexes: creating date_desc index")
	_, err := indexes.CreateOne(ctx, dateIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: date index error:", err)
		return err
	}
	return nil
}

func EnsureGalleryIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("gallery_images").Indexes()

	orderIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "displayOrder", Value: 1}},
		Options: options.Index().SetName("displayOrder_asc"),
	}

	log.Println("EnsureGalleryIndexes: creating displayOrder_asc index")
	_, err := indexes.CreateOne(ctx, orderIndex)
	if err != nil {
		log.Println("EnsureGalleryIndexes: displayOrder index error:", err)
		return err
	}
	return nil
}
