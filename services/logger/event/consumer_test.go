package event

import (
	"encoding/json"
	"testing"
	"time"

	"wax/pkg/models"
	eventtypes "wax/pkg/types/eventtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogStore struct {
	entries []models.BaseLog
}

func (f *fakeLogStore) Insert(entry models.BaseLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func TestHandleMessageStoresLogEvent(t *testing.T) {
	store := &fakeLogStore{}
	consumer := &Consumer{store: store}

	entry := models.BaseLog{
		Level:     "info",
		Timestamp: time.Now(),
		Service:   3,
		Message:   "Gift card issued",
	}
	data, err := json.Marshal(entry)
	require.NoError(t, err)

	payload, err := json.Marshal(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeLog,
		Data:      data,
	})
	require.NoError(t, err)

	consumer.HandleMessage(payload)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "Gift card issued", store.entries[0].Message)
	assert.Equal(t, 3, store.entries[0].Service)
}

func TestHandleMessageIgnoresOtherEvents(t *testing.T) {
	store := &fakeLogStore{}
	consumer := &Consumer{store: store}

	payload, err := json.Marshal(eventtypes.EventPayload{EventType: eventtypes.EventTypeDJJoined})
	require.NoError(t, err)

	consumer.HandleMessage(payload)
	consumer.HandleMessage([]byte("not-json"))

	assert.Empty(t, store.entries)
}
