package events

import (
	"context"
	"encoding/json"
)

// Collections with a realtime change feed. Dishes, specialties, settings and
// gallery images are admin-edited only and are re-fetched on demand instead.
const (
	CollectionOrders   = "orders"
	CollectionMessages = "messages"
	CollectionReviews  = "reviews"
)

const (
	SubjectOrders   = "changes.orders"
	SubjectMessages = "changes.messages"
	SubjectReviews  = "changes.reviews"
)

// Subject returns the change-feed subject for a collection.
func Subject(collection string) string {
	return "changes." + collection
}

type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ChangeEvent is one change notification. Insert and update carry the full
// new record; delete carries only the id.
type ChangeEvent struct {
	Collection string          `json:"collection"`
	Action     Action          `json:"action"`
	ID         string          `json:"id"`
	Record     json.RawMessage `json:"record,omitempty"`
}

// NewChange builds a ChangeEvent, marshalling the record when one is given.
func NewChange(collection string, action Action, id string, record interface{}) (ChangeEvent, error) {
	evt := ChangeEvent{
		Collection: collection,
		Action:     action,
		ID:         id,
	}
	if record != nil {
		raw, err := json.Marshal(record)
		if err != nil {
			return ChangeEvent{}, err
		}
		evt.Record = raw
	}
	return evt, nil
}

type HandlerFunc func(ctx context.Context, msg []byte) error

// Publisher pushes change notifications to the feed.
type Publisher interface {
	Publish(ctx context.Context, subject string, msg []byte) error
}

// Subscriber registers one-way push handlers on the feed.
type Subscriber interface {
	Subscribe(ctx context.Context, subject string, handler HandlerFunc) error
}

// PublishChange marshals the event and publishes it on the collection's
// subject.
func PublishChange(ctx context.Context, pub Publisher, evt ChangeEvent) error {
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return pub.Publish(ctx, Subject(evt.Collection), raw)
}
