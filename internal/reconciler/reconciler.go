// Package reconciler merges inbound change notifications into the mirror,
// independent of changes this process initiated itself. Insert notifications
// for records the local session already added are dropped by the mirror's id
// dedupe; concurrent local and remote updates resolve last-write-wins.
package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mamanmange/internal/events"
	"mamanmange/internal/mirror"
	"mamanmange/internal/models"
)

type Reconciler struct {
	sub    events.Subscriber
	mirror *mirror.Mirror
}

func New(sub events.Subscriber, m *mirror.Mirror) *Reconciler {
	return &Reconciler{sub: sub, mirror: m}
}

// Start registers the three change subscriptions. Teardown happens when the
// subscriber itself is closed; there is no reconnection logic beyond what the
// feed client does on its own.
func (r *Reconciler) Start(ctx context.Context) error {
	if err := r.sub.Subscribe(ctx, events.SubjectOrders, r.handleOrderChange); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", events.SubjectOrders, err)
	}
	if err := r.sub.Subscribe(ctx, events.SubjectMessages, r.handleMessageChange); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", events.SubjectMessages, err)
	}
	if err := r.sub.Subscribe(ctx, events.SubjectReviews, r.handleReviewChange); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", events.SubjectReviews, err)
	}

	log.Println("[RECONCILER] [INFO] change subscriptions established")
	return nil
}

func (r *Reconciler) handleOrderChange(ctx context.Context, msg []byte) error {
	var evt events.ChangeEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		log.Println("[RECONCILER] [ERROR] bad order change event:", err)
		return nil
	}

	switch evt.Action {
	case events.ActionInsert, events.ActionUpdate:
		var order models.Order
		if err := json.Unmarshal(evt.Record, &order); err != nil {
			log.Println("[RECONCILER] [ERROR] bad order record:", err)
			return nil
		}
		if evt.Action == events.ActionInsert {
			r.mirror.InsertOrder(order)
		} else {
			r.mirror.UpdateOrder(order)
		}
	case events.ActionDelete:
		id, err := primitive.ObjectIDFromHex(evt.ID)
		if err != nil {
			log.Println("[RECONCILER] [ERROR] bad order id:", err)
			return nil
		}
		r.mirror.DeleteOrder(id)
	default:
		log.Println("[RECONCILER] [INFO] unknown order change action:", evt.Action)
	}
	return nil
}

func (r *Reconciler) handleMessageChange(ctx context.Context, msg []byte) error {
	var evt events.ChangeEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		log.Println("[RECONCILER] [ERROR] bad message change event:", err)
		return nil
	}

	switch evt.Action {
	case events.ActionInsert, events.ActionUpdate:
		var message models.ContactMessage
		if err := json.Unmarshal(evt.Record, &message); err != nil {
			log.Println("[RECONCILER] [ERROR] bad message record:", err)
			return nil
		}
		if evt.Action == events.ActionInsert {
			r.mirror.InsertMessage(message)
		} else {
			r.mirror.UpdateMessage(message)
		}
	case events.ActionDelete:
		id, err := primitive.ObjectIDFromHex(evt.ID)
		if err != nil {
			log.Println("[RECONCILER] [ERROR] bad message id:", err)
			return nil
		}
		r.mirror.DeleteMessage(id)
	default:
		log.Println("[RECONCILER] [INFO] unknown message change action:", evt.Action)
	}
	return nil
}

func (r *Reconciler) handleReviewChange(ctx context.Context, msg []byte) error {
	var evt events.ChangeEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		log.Println("[RECONCILER] [ERROR] bad review change event:", err)
		return nil
	}

	switch evt.Action {
	case events.ActionInsert, events.ActionUpdate:
		var review models.Review
		if err := json.Unmarshal(evt.Record, &review); err != nil {
			log.Println("[RECONCILER] [ERROR] bad review record:", err)
			return nil
		}
		if evt.Action == events.ActionInsert {
			r.mirror.InsertReview(review)
		} else {
			r.mirror.UpdateReview(review)
		}
	case events.ActionDelete:
		id, err := primitive.ObjectIDFromHex(evt.ID)
		if err != nil {
			log.Println("[RECONCILER] [ERROR] bad review id:", err)
			return nil
		}
		r.mirror.DeleteReview(id)
	default:
		log.Println("[RECONCILER] [INFO] unknown review change action:", evt.Action)
	}
	return nil
}
