package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mamanmange/internal/models"
)

func orderWithID(id primitive.ObjectID, dish string) models.Order {
	return models.Order{
		ID:       id,
		DishName: dish,
		Quantity: 1,
		Status:   models.StatusPending,
	}
}

func TestInsertOrderPrependsNewestFirst(t *testing.T) {
	m := New()
	first := orderWithID(primitive.NewObjectID(), "Poulet DG")
	second := orderWithID(primitive.NewObjectID(), "Ndole")

	m.InsertOrder(first)
	m.InsertOrder(second)

	orders := m.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestInsertOrderDedupesByID(t *testing.T) {
	m := New()
	order := orderWithID(primitive.NewObjectID(), "Poulet DG")

	m.InsertOrder(order)
	// A change notification for a locally created order arrives as a second
	// insert with the same id.
	m.InsertOrder(order)

	assert.Len(t, m.Orders(), 1)
}

func TestUpdateOrderReplacesEntry(t *testing.T) {
	m := New()
	order := orderWithID(primitive.NewObjectID(), "Poulet DG")
	m.InsertOrder(order)

	order.Status = models.StatusCooking
	m.UpdateOrder(order)

	got, ok := m.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusCooking, got.Status)
	assert.Len(t, m.Orders(), 1)
}

func TestUpdateOrderIgnoresUnknownID(t *testing.T) {
	m := New()
	m.InsertOrder(orderWithID(primitive.NewObjectID(), "Poulet DG"))

	stranger := orderWithID(primitive.NewObjectID(), "Eru")
	m.UpdateOrder(stranger)

	orders := m.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "Poulet DG", orders[0].DishName)
	_, ok := m.Order(stranger.ID)
	assert.False(t, ok)
}

func TestDeleteOrderRemovesEntry(t *testing.T) {
	m := New()
	keep := orderWithID(primitive.NewObjectID(), "Poulet DG")
	gone := orderWithID(primitive.NewObjectID(), "Ndole")
	m.InsertOrder(keep)
	m.InsertOrder(gone)

	m.DeleteOrder(gone.ID)

	orders := m.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, keep.ID, orders[0].ID)

	// Deleting an absent id is a no-op.
	m.DeleteOrder(gone.ID)
	assert.Len(t, m.Orders(), 1)
}

func TestLastWriteWins(t *testing.T) {
	m := New()
	order := orderWithID(primitive.NewObjectID(), "Poulet DG")
	m.InsertOrder(order)

	local := order
	local.Status = models.StatusCooking
	remote := order
	remote.Status = models.StatusReady

	m.UpdateOrder(local)
	m.UpdateOrder(remote)

	got, ok := m.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusReady, got.Status)
}

func TestWarmOrdersReplacesWholesale(t *testing.T) {
	m := New()
	m.InsertOrder(orderWithID(primitive.NewObjectID(), "Stale"))

	fresh := []models.Order{
		orderWithID(primitive.NewObjectID(), "Ndole"),
		orderWithID(primitive.NewObjectID(), "Eru"),
	}
	m.WarmOrders(fresh)

	orders := m.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "Ndole", orders[0].DishName)

	// Mutating the warmed slice must not leak into the mirror.
	fresh[0].DishName = "changed"
	assert.Equal(t, "Ndole", m.Orders()[0].DishName)
}

func TestOrdersReturnsCopy(t *testing.T) {
	m := New()
	m.InsertOrder(orderWithID(primitive.NewObjectID(), "Poulet DG"))

	snapshot := m.Orders()
	snapshot[0].DishName = "changed"

	assert.Equal(t, "Poulet DG", m.Orders()[0].DishName)
}

func TestMessageMirror(t *testing.T) {
	m := New()
	message := models.ContactMessage{ID: primitive.NewObjectID(), Name: "Alice"}

	m.InsertMessage(message)
	m.InsertMessage(message)
	require.Len(t, m.Messages(), 1)

	message.Read = true
	m.UpdateMessage(message)
	got, ok := m.Message(message.ID)
	require.True(t, ok)
	assert.True(t, got.Read)

	m.DeleteMessage(message.ID)
	assert.Empty(t, m.Messages())
}

func TestReviewMirror(t *testing.T) {
	m := New()
	review := models.Review{ID: primitive.NewObjectID(), Author: "Bob", Rating: 5}

	m.InsertReview(review)
	m.InsertReview(review)
	require.Len(t, m.Reviews(), 1)

	review.Read = true
	m.UpdateReview(review)
	got, ok := m.Review(review.ID)
	require.True(t, ok)
	assert.True(t, got.Read)

	m.DeleteReview(review.ID)
	assert.Empty(t, m.Reviews())
}
