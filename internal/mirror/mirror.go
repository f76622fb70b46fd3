// Package mirror holds the in-memory copy of the store collections the
// dashboard works from. Every mutation, whether triggered by a local admin
// action or by an inbound change notification, goes through the Apply
// methods of the one Mirror instance, so entries never diverge inside a
// running process. Across processes the discipline is last-write-wins:
// whichever update lands last replaces the entry, with no versioning.
package mirror

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mamanmange/internal/models"
)

// Mirror keeps newest-first slices of orders, messages and reviews.
type Mirror struct {
	mu       sync.RWMutex
	orders   []models.Order
	messages []models.ContactMessage
	reviews  []models.Review
}

func New() *Mirror {
	return &Mirror{}
}

// WarmOrders replaces the order mirror wholesale. Used for the initial bulk
// fetch at startup; the slice is expected to already be newest-first.
func (m *Mirror) WarmOrders(orders []models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append([]models.Order(nil), orders...)
}

func (m *Mirror) WarmMessages(messages []models.ContactMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append([]models.ContactMessage(nil), messages...)
}

func (m *Mirror) WarmReviews(reviews []models.Review) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append([]models.Review(nil), reviews...)
}

// InsertOrder prepends the order unless an entry with the same id is already
// present. The local creator and the change feed can both deliver the same
// record; the second arrival is a no-op.
func (m *Mirror) InsertOrder(order models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.orders {
		if existing.ID == order.ID {
			return
		}
	}
	m.orders = append([]models.Order{order}, m.orders...)
}

// UpdateOrder replaces the entry sharing the order's id. An update for an
// unknown id is ignored: there is no entry to update.
func (m *Mirror) UpdateOrder(order models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.orders {
		if existing.ID == order.ID {
			m.orders[i] = order
			return
		}
	}
}

// DeleteOrder removes the entry with the given id if present.
func (m *Mirror) DeleteOrder(id primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.orders {
		if existing.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return
		}
	}
}

// Order returns the mirrored order with the given id.
func (m *Mirror) Order(id primitive.ObjectID) (models.Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, existing := range m.orders {
		if existing.ID == id {
			return existing, true
		}
	}
	return models.Order{}, false
}

// Orders returns a copy of the order mirror, newest first.
func (m *Mirror) Orders() []models.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Order(nil), m.orders...)
}

func (m *Mirror) InsertMessage(message models.ContactMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.messages {
		if existing.ID == message.ID {
			return
		}
	}
	m.messages = append([]models.ContactMessage{message}, m.messages...)
}

func (m *Mirror) UpdateMessage(message models.ContactMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.messages {
		if existing.ID == message.ID {
			m.messages[i] = message
			return
		}
	}
}

func (m *Mirror) DeleteMessage(id primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.messages {
		if existing.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return
		}
	}
}

// Message returns the mirrored message with the given id.
func (m *Mirror) Message(id primitive.ObjectID) (models.ContactMessage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, existing := range m.messages {
		if existing.ID == id {
			return existing, true
		}
	}
	return models.ContactMessage{}, false
}

func (m *Mirror) Messages() []models.ContactMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.ContactMessage(nil), m.messages...)
}

func (m *Mirror) InsertReview(review models.Review) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.reviews {
		if existing.ID == review.ID {
			return
		}
	}
	m.reviews = append([]models.Review{review}, m.reviews...)
}

func (m *Mirror) UpdateReview(review models.Review) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.reviews {
		if existing.ID == review.ID {
			m.reviews[i] = review
			return
		}
	}
}

func (m *Mirror) DeleteReview(id primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.reviews {
		if existing.ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return
		}
	}
}

// Review returns the mirrored review with the given id.
func (m *Mirror) Review(id primitive.ObjectID) (models.Review, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, existing := range m.reviews {
		if existing.ID == id {
			return existing, true
		}
	}
	return models.Review{}, false
}

func (m *Mirror) Reviews() []models.Review {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Review(nil), m.reviews...)
}
