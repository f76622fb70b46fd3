package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order. The admin UI only offers
// the usual next steps per status, but the backend accepts any of the five
// values on update.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCooking   OrderStatus = "cooking"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the five known statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCooking, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

const (
	DeliveryModePickup   = "pickup"
	DeliveryModeDelivery = "delivery"
)

// Order defines the persisted order document. The dish name is denormalized
// on purpose: an order keeps the name the customer saw even if the dish is
// later renamed or removed. TotalPrice is the amount proposed by the customer
// in FCFA and is never recomputed from the menu price.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	CustomerPhone   string             `bson:"customerPhone" json:"customerPhone"`
	CustomerAddress string             `bson:"customerAddress,omitempty" json:"customerAddress,omitempty"`
	DishName        string             `bson:"dishName" json:"dishName"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	TotalPrice      int64              `bson:"totalPrice" json:"totalPrice"`
	Status          OrderStatus        `bson:"status" json:"status"`
	Date            time.Time          `bson:"date" json:"date"`
	DeliveryMode    string             `bson:"deliveryMode" json:"deliveryMode"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
