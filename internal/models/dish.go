package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryPlat    = "plat"
	CategoryDessert = "dessert"
	CategoryBoisson = "boisson"
)

// ValidDishCategory reports whether the category is one of the three menu
// sections.
func ValidDishCategory(category string) bool {
	switch category {
	case CategoryPlat, CategoryDessert, CategoryBoisson:
		return true
	}
	return false
}

// Dish is a menu entry. Price is the suggested price shown to customers; the
// amount actually paid is negotiated per order. Available only hides the dish
// from the public menu, it never deletes it.
type Dish struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       int64              `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
