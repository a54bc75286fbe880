package event

import (
	"encoding/json"
	"testing"

	eventtypes "wax/pkg/types/eventtype"
	"wax/services/notify/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []mailer.Email
}

func (f *fakeMailer) Send(email mailer.Email) error {
	f.sent = append(f.sent, email)
	return nil
}

func TestBuildGiftCardEmail(t *testing.T) {
	email := BuildGiftCardEmail(eventtypes.GiftCardMailEvent{
		Code:           "FWGC-AAAA-BBBB-CCCC",
		AmountCents:    5000,
		RecipientEmail: "friend@example.com",
		SenderName:     "Jae",
		Message:        "dig in",
	})

	assert.Equal(t, "friend@example.com", email.To)
	assert.Contains(t, email.HtmlBody, "FWGC-AAAA-BBBB-CCCC")
	assert.Contains(t, email.HtmlBody, "$50.00")
	assert.Contains(t, email.HtmlBody, "dig in")
}

func TestBuildOrderEmailPaid(t *testing.T) {
	email := BuildOrderEmail(eventtypes.OrderMailEvent{
		OrderID:    "ord-1",
		Email:      "buyer@example.com",
		Status:     "paid",
		TotalCents: 7400,
	})

	assert.Equal(t, "buyer@example.com", email.To)
	assert.Contains(t, email.Subject, "confirmed")
	assert.Contains(t, email.HtmlBody, "$74.00")
}

func TestBuildOrderEmailShipped(t *testing.T) {
	email := BuildOrderEmail(eventtypes.OrderMailEvent{
		OrderID:        "ord-1",
		Email:          "buyer@example.com",
		Status:         "shipped",
		TrackingNumber: "KR1234567890",
	})

	assert.Contains(t, email.Subject, "shipped")
	assert.Contains(t, email.HtmlBody, "KR1234567890")
}

func TestHandleMessageRoutesByEventType(t *testing.T) {
	m := &fakeMailer{}
	consumer := &Consumer{mailer: m}

	data, err := json.Marshal(eventtypes.GiftCardMailEvent{
		Code:           "FWGC-AAAA-BBBB-CCCC",
		RecipientEmail: "friend@example.com",
	})
	require.NoError(t, err)

	payload, err := json.Marshal(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeMailGiftCard,
		Data:      data,
	})
	require.NoError(t, err)

	consumer.HandleMessage(payload)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "friend@example.com", m.sent[0].To)

	// 알 수 없는 이벤트는 무시
	unknown, err := json.Marshal(eventtypes.EventPayload{EventType: "mail.unknown"})
	require.NoError(t, err)
	consumer.HandleMessage(unknown)
	assert.Len(t, m.sent, 1)

	// 깨진 메시지도 무시
	consumer.HandleMessage([]byte("not-json"))
	assert.Len(t, m.sent, 1)
}
