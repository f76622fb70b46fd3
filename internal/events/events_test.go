package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, SubjectOrders, Subject(CollectionOrders))
	assert.Equal(t, SubjectMessages, Subject(CollectionMessages))
	assert.Equal(t, SubjectReviews, Subject(CollectionReviews))
}

func TestNewChangeCarriesRecord(t *testing.T) {
	record := map[string]string{"dishName": "Ndole"}
	evt, err := NewChange(CollectionOrders, ActionInsert, "abc", record)
	require.NoError(t, err)

	assert.Equal(t, CollectionOrders, evt.Collection)
	assert.Equal(t, ActionInsert, evt.Action)
	assert.Equal(t, "abc", evt.ID)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(evt.Record, &decoded))
	assert.Equal(t, "Ndole", decoded["dishName"])
}

func TestNewChangeDeleteHasNoRecord(t *testing.T) {
	evt, err := NewChange(CollectionOrders, ActionDelete, "abc", nil)
	require.NoError(t, err)
	assert.Nil(t, evt.Record)
}

type capturingPublisher struct {
	subject string
	msg     []byte
}

func (p *capturingPublisher) Publish(ctx context.Context, subject string, msg []byte) error {
	p.subject = subject
	p.msg = msg
	return nil
}

func TestPublishChangeUsesCollectionSubject(t *testing.T) {
	pub := &capturingPublisher{}
	evt, err := NewChange(CollectionReviews, ActionUpdate, "abc", map[string]int{"rating": 5})
	require.NoError(t, err)

	require.NoError(t, PublishChange(context.Background(), pub, evt))
	assert.Equal(t, SubjectReviews, pub.subject)

	var decoded ChangeEvent
	require.NoError(t, json.Unmarshal(pub.msg, &decoded))
	assert.Equal(t, ActionUpdate, decoded.Action)
	assert.Equal(t, "abc", decoded.ID)
}
