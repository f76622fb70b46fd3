package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GalleryImage is one image of the public gallery. Images are shown by
// ascending DisplayOrder; new images are appended after the current maximum.
type GalleryImage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL          string             `bson:"url" json:"url"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
}
