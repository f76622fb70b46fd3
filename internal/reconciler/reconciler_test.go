package reconciler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mamanmange/internal/events"
	"mamanmange/internal/mirror"
	"mamanmange/internal/models"
)

// fakeSubscriber records handlers and lets the test push messages through
// them as if the feed had delivered them.
type fakeSubscriber struct {
	handlers map[string]events.HandlerFunc
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{handlers: make(map[string]events.HandlerFunc)}
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, subject string, handler events.HandlerFunc) error {
	f.handlers[subject] = handler
	return nil
}

func (f *fakeSubscriber) deliver(t *testing.T, subject string, evt events.ChangeEvent) {
	t.Helper()
	handler, ok := f.handlers[subject]
	require.True(t, ok, "no handler for %s", subject)
	raw, err := json.Marshal(evt)
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), raw))
}

func startReconciler(t *testing.T) (*fakeSubscriber, *mirror.Mirror) {
	t.Helper()
	sub := newFakeSubscriber()
	m := mirror.New()
	require.NoError(t, New(sub, m).Start(context.Background()))
	return sub, m
}

func orderEvent(t *testing.T, action events.Action, order models.Order) events.ChangeEvent {
	t.Helper()
	var record interface{}
	if action != events.ActionDelete {
		record = order
	}
	evt, err := events.NewChange(events.CollectionOrders, action, order.ID.Hex(), record)
	require.NoError(t, err)
	return evt
}

func TestStartSubscribesAllSubjects(t *testing.T) {
	sub, _ := startReconciler(t)

	assert.Contains(t, sub.handlers, events.SubjectOrders)
	assert.Contains(t, sub.handlers, events.SubjectMessages)
	assert.Contains(t, sub.handlers, events.SubjectReviews)
}

func TestOrderInsertAppearsInMirror(t *testing.T) {
	sub, m := startReconciler(t)

	order := models.Order{ID: primitive.NewObjectID(), DishName: "Ndole", Status: models.StatusPending}
	sub.deliver(t, events.SubjectOrders, orderEvent(t, events.ActionInsert, order))

	orders := m.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderInsertForLocalCreationIsDeduped(t *testing.T) {
	sub, m := startReconciler(t)

	// The local session already added the order; the feed echoes it back.
	order := models.Order{ID: primitive.NewObjectID(), DishName: "Ndole"}
	m.InsertOrder(order)

	sub.deliver(t, events.SubjectOrders, orderEvent(t, events.ActionInsert, order))

	assert.Len(t, m.Orders(), 1)
}

func TestOrderUpdateReplacesMirrorEntry(t *testing.T) {
	sub, m := startReconciler(t)

	order := models.Order{ID: primitive.NewObjectID(), Status: models.StatusPending}
	m.InsertOrder(order)

	order.Status = models.StatusCooking
	sub.deliver(t, events.SubjectOrders, orderEvent(t, events.ActionUpdate, order))

	got, ok := m.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusCooking, got.Status)
}

func TestOrderUpdateForUnknownIDIsIgnored(t *testing.T) {
	sub, m := startReconciler(t)

	order := models.Order{ID: primitive.NewObjectID(), Status: models.StatusCooking}
	sub.deliver(t, events.SubjectOrders, orderEvent(t, events.ActionUpdate, order))

	assert.Empty(t, m.Orders())
}

func TestOrderDeleteRemovesMirrorEntry(t *testing.T) {
	sub, m := startReconciler(t)

	order := models.Order{ID: primitive.NewObjectID()}
	m.InsertOrder(order)

	sub.deliver(t, events.SubjectOrders, orderEvent(t, events.ActionDelete, order))

	assert.Empty(t, m.Orders())
}

func TestBadPayloadIsSwallowed(t *testing.T) {
	sub, m := startReconciler(t)

	handler := sub.handlers[events.SubjectOrders]
	assert.NoError(t, handler(context.Background(), []byte("not json")))
	assert.Empty(t, m.Orders())
}

func TestMessageChanges(t *testing.T) {
	sub, m := startReconciler(t)

	message := models.ContactMessage{ID: primitive.NewObjectID(), Name: "Alice"}
	evt, err := events.NewChange(events.CollectionMessages, events.ActionInsert, message.ID.Hex(), message)
	require.NoError(t, err)
	sub.deliver(t, events.SubjectMessages, evt)

	require.Len(t, m.Messages(), 1)

	message.Read = true
	evt, err = events.NewChange(events.CollectionMessages, events.ActionUpdate, message.ID.Hex(), message)
	require.NoError(t, err)
	sub.deliver(t, events.SubjectMessages, evt)

	got, ok := m.Message(message.ID)
	require.True(t, ok)
	assert.True(t, got.Read)

	evt, err = events.NewChange(events.CollectionMessages, events.ActionDelete, message.ID.Hex(), nil)
	require.NoError(t, err)
	sub.deliver(t, events.SubjectMessages, evt)

	assert.Empty(t, m.Messages())
}

func TestReviewChanges(t *testing.T) {
	sub, m := startReconciler(t)

	review := models.Review{ID: primitive.NewObjectID(), Author: "Bob", Rating: 4}
	evt, err := events.NewChange(events.CollectionReviews, events.ActionInsert, review.ID.Hex(), review)
	require.NoError(t, err)
	sub.deliver(t, events.SubjectReviews, evt)

	require.Len(t, m.Reviews(), 1)

	evt, err = events.NewChange(events.CollectionReviews, events.ActionDelete, review.ID.Hex(), nil)
	require.NoError(t, err)
	sub.deliver(t, events.SubjectReviews, evt)

	assert.Empty(t, m.Reviews())
}
