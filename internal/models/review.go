package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer review. Rating is 1 to 5.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author  string             `bson:"author" json:"author"`
	Rating  int                `bson:"rating" json:"rating"`
	Comment string             `bson:"comment" json:"comment"`
	Date    time.Time          `bson:"date" json:"date"`
	Read    bool               `bson:"read" json:"read"`
}
