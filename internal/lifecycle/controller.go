// Package lifecycle mediates every order creation, status change and
// deletion, keeping the remote store and the local mirror consistent. All
// operations are pessimistic: the mirror is only touched after the store has
// acknowledged the write, and a failed call leaves the mirror exactly as it
// was. Nothing is retried.
package lifecycle

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mamanmange/internal/mirror"
	"mamanmange/internal/models"
)

var (
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerPhoneRequired = errors.New("customer phone is required")
	ErrAddressRequired       = errors.New("address is required for delivery orders")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrInvalidPrice          = errors.New("total price must be zero or greater")
	ErrInvalidDeliveryMode   = errors.New("delivery mode must be pickup or delivery")
	ErrInvalidStatus         = errors.New("unknown order status")
)

// OrderRepository is what the controller needs from the store.
type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderDraft carries the customer-entered fields of a new order.
type OrderDraft struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	DishName        string `json:"dishName"`
	Quantity        int    `json:"quantity"`
	TotalPrice      int64  `json:"totalPrice"`
	DeliveryMode    string `json:"deliveryMode"`
	Notes           string `json:"notes"`
}

// Validate applies the creation constraints. The address is only required
// when the order is for delivery; for pickup its absence is not an error.
func (d OrderDraft) Validate() error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return ErrCustomerNameRequired
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		return ErrCustomerPhoneRequired
	}
	if d.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if d.TotalPrice < 0 {
		return ErrInvalidPrice
	}
	switch d.DeliveryMode {
	case models.DeliveryModePickup:
	case models.DeliveryModeDelivery:
		if strings.TrimSpace(d.CustomerAddress) == "" {
			return ErrAddressRequired
		}
	default:
		return ErrInvalidDeliveryMode
	}
	return nil
}

type Controller struct {
	repo   OrderRepository
	mirror *mirror.Mirror
}

func NewController(repo OrderRepository, m *mirror.Mirror) *Controller {
	return &Controller{repo: repo, mirror: m}
}

// PlaceOrder validates the draft, persists a pending order and prepends it to
// the mirror. On store failure nothing is added and the error is returned.
func (c *Controller) PlaceOrder(ctx context.Context, draft OrderDraft) (models.Order, error) {
	if err := draft.Validate(); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		CustomerName:    strings.TrimSpace(draft.CustomerName),
		CustomerPhone:   strings.TrimSpace(draft.CustomerPhone),
		CustomerAddress: strings.TrimSpace(draft.CustomerAddress),
		DishName:        strings.TrimSpace(draft.DishName),
		Quantity:        draft.Quantity,
		TotalPrice:      draft.TotalPrice,
		Status:          models.StatusPending,
		Date:            time.Now(),
		DeliveryMode:    draft.DeliveryMode,
		Notes:           strings.TrimSpace(draft.Notes),
	}

	created, err := c.repo.Insert(ctx, order)
	if err != nil {
		log.Println("[ORDER] [ERROR] place order failed:", err)
		return models.Order{}, err
	}

	c.mirror.InsertOrder(created)
	log.Printf("[ORDER] [INFO] order %s placed for %q x%d", created.ID.Hex(), created.DishName, created.Quantity)
	return created, nil
}

// SetStatus moves the order to the given status. Any of the five statuses is
// a legal target; the admin screens only offer sensible next steps, but the
// data layer does not guard transitions. On store failure the mirror is left
// unchanged.
func (c *Controller) SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if err := c.repo.UpdateStatus(ctx, id, status); err != nil {
		log.Printf("[ORDER] [ERROR] status update %s -> %s failed: %v", id.Hex(), status, err)
		return err
	}

	if order, ok := c.mirror.Order(id); ok {
		order.Status = status
		c.mirror.UpdateOrder(order)
	}
	log.Printf("[ORDER] [INFO] order %s moved to %s", id.Hex(), status)
	return nil
}

// Delete removes the order from the store and the mirror. Meant for orders in
// a terminal status, though that is not enforced.
func (c *Controller) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		log.Printf("[ORDER] [ERROR] delete %s failed: %v", id.Hex(), err)
		return err
	}

	c.mirror.DeleteOrder(id)
	log.Printf("[ORDER] [INFO] order %s deleted", id.Hex())
	return nil
}
