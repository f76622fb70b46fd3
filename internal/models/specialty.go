package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Specialty is one of Maman's signature dishes shown on the services page.
type Specialty struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}
