package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mamanmange/internal/mirror"
	"mamanmange/internal/models"
)

// fakeOrderRepo stands in for the store. Each operation can be forced to
// fail to exercise the pessimistic paths.
type fakeOrderRepo struct {
	insertErr error
	updateErr error
	deleteErr error

	inserted      []models.Order
	updatedID     primitive.ObjectID
	updatedStatus models.OrderStatus
	deletedID     primitive.ObjectID
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	if f.insertErr != nil {
		return models.Order{}, f.insertErr
	}
	order.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, order)
	return order, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func validDraft() OrderDraft {
	return OrderDraft{
		CustomerName:  "Marie",
		CustomerPhone: "699000000",
		DishName:      "Foufou Royal",
		Quantity:      1,
		TotalPrice:    7000,
		DeliveryMode:  models.DeliveryModePickup,
	}
}

func TestPlaceOrderPendingAtHead(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := mirror.New()
	m.InsertOrder(models.Order{ID: primitive.NewObjectID(), DishName: "older"})
	ctrl := NewController(repo, m)

	created, err := ctrl.PlaceOrder(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, created.Status)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.Date.IsZero())

	orders := m.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, created.ID, orders[0].ID)
}

func TestPlaceOrderStoreFailureLeavesMirrorUntouched(t *testing.T) {
	repo := &fakeOrderRepo{insertErr: errors.New("store down")}
	m := mirror.New()
	ctrl := NewController(repo, m)

	_, err := ctrl.PlaceOrder(context.Background(), validDraft())
	require.Error(t, err)
	assert.Empty(t, m.Orders())
}

func TestPlaceOrderValidation(t *testing.T) {
	ctrl := NewController(&fakeOrderRepo{}, mirror.New())

	cases := []struct {
		name    string
		mutate  func(*OrderDraft)
		wantErr error
	}{
		{"missing name", func(d *OrderDraft) { d.CustomerName = "  " }, ErrCustomerNameRequired},
		{"missing phone", func(d *OrderDraft) { d.CustomerPhone = "" }, ErrCustomerPhoneRequired},
		{"zero quantity", func(d *OrderDraft) { d.Quantity = 0 }, ErrInvalidQuantity},
		{"negative price", func(d *OrderDraft) { d.TotalPrice = -1 }, ErrInvalidPrice},
		{"bad delivery mode", func(d *OrderDraft) { d.DeliveryMode = "drone" }, ErrInvalidDeliveryMode},
		{"delivery without address", func(d *OrderDraft) {
			d.DeliveryMode = models.DeliveryModeDelivery
			d.CustomerAddress = ""
		}, ErrAddressRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			_, err := ctrl.PlaceOrder(context.Background(), draft)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPlaceOrderPickupWithoutAddress(t *testing.T) {
	ctrl := NewController(&fakeOrderRepo{}, mirror.New())

	draft := validDraft()
	draft.CustomerAddress = ""

	_, err := ctrl.PlaceOrder(context.Background(), draft)
	assert.NoError(t, err)
}

func TestSetStatusSequentialUpdatesEndOnLast(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := mirror.New()
	id := primitive.NewObjectID()
	m.InsertOrder(models.Order{ID: id, Status: models.StatusPending})
	ctrl := NewController(repo, m)

	require.NoError(t, ctrl.SetStatus(context.Background(), id, models.StatusCooking))
	require.NoError(t, ctrl.SetStatus(context.Background(), id, models.StatusReady))

	got, ok := m.Order(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusReady, got.Status)
	assert.Equal(t, models.StatusReady, repo.updatedStatus)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := &fakeOrderRepo{}
	ctrl := NewController(repo, mirror.New())

	err := ctrl.SetStatus(context.Background(), primitive.NewObjectID(), "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.True(t, repo.updatedID.IsZero())
}

func TestSetStatusAnyOfFiveAccepted(t *testing.T) {
	m := mirror.New()
	id := primitive.NewObjectID()
	m.InsertOrder(models.Order{ID: id, Status: models.StatusDelivered})
	ctrl := NewController(&fakeOrderRepo{}, m)

	// Delivered back to pending is legal at this layer.
	require.NoError(t, ctrl.SetStatus(context.Background(), id, models.StatusPending))

	got, _ := m.Order(id)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestSetStatusStoreFailureLeavesMirrorUntouched(t *testing.T) {
	repo := &fakeOrderRepo{updateErr: errors.New("store down")}
	m := mirror.New()
	id := primitive.NewObjectID()
	m.InsertOrder(models.Order{ID: id, Status: models.StatusPending})
	ctrl := NewController(repo, m)

	err := ctrl.SetStatus(context.Background(), id, models.StatusCooking)
	require.Error(t, err)

	got, _ := m.Order(id)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestDeleteRemovesFromMirror(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := mirror.New()
	id := primitive.NewObjectID()
	m.InsertOrder(models.Order{ID: id, Status: models.StatusCancelled})
	ctrl := NewController(repo, m)

	require.NoError(t, ctrl.Delete(context.Background(), id))
	assert.Empty(t, m.Orders())
	assert.Equal(t, id, repo.deletedID)
}

func TestDeleteStoreFailureLeavesMirrorUntouched(t *testing.T) {
	repo := &fakeOrderRepo{deleteErr: errors.New("store down")}
	m := mirror.New()
	id := primitive.NewObjectID()
	m.InsertOrder(models.Order{ID: id})
	ctrl := NewController(repo, m)

	err := ctrl.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Len(t, m.Orders(), 1)
}
