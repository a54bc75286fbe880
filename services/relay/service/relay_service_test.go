package service

import (
	"encoding/json"
	"testing"

	eventtypes "wax/pkg/types/eventtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDFromChannel(t *testing.T) {
	userID, err := UserIDFromChannel("user:42")
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	_, err = UserIDFromChannel("lobby")
	assert.Error(t, err)

	_, err = UserIDFromChannel("user:abc")
	assert.Error(t, err)
}

func TestBuildFrame(t *testing.T) {
	event := eventtypes.EventPayload{
		EventType: eventtypes.EventTypeDJJoined,
		Data:      json.RawMessage(`{"user_id":7}`),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	frame, err := BuildFrame("lobby", payload)
	require.NoError(t, err)

	assert.Equal(t, "lobby", frame.Channel)
	assert.Equal(t, eventtypes.EventTypeDJJoined, frame.Event)
	assert.JSONEq(t, `{"user_id":7}`, string(frame.Payload))
}

func TestBuildFrameRejectsMalformedPayload(t *testing.T) {
	_, err := BuildFrame("lobby", []byte("not-json"))
	assert.Error(t, err)
}
