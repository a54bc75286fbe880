package eventtypes

import (
	"encoding/json"
	"time"
)

type EventPayload struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// 실시간 브로드캐스트 이벤트 (Redis Pub/Sub)
const (
	EventTypeDJJoined          = "dj-joined"
	EventTypeDJLeft            = "dj-left"
	EventTypeDJStatus          = "dj-status"
	EventTypeTakeoverRequest   = "takeover-request"
	EventTypeTakeoverApproved  = "takeover-approved"
	EventTypeTakeoverDeclined  = "takeover-declined"
	EventTypeTakeoverCancelled = "takeover-cancelled"
	EventTypeStreamStarted     = "stream-started"
	EventTypeStreamStopped     = "stream-stopped"
)

// 서비스 간 이벤트 (RabbitMQ)
const (
	EventTypeMailGiftCard     = "mail.giftcard"
	EventTypeMailOrderPaid    = "mail.order.paid"
	EventTypeMailOrderShipped = "mail.order.shipped"
	EventTypeOrderPaid        = "order.paid"
	EventTypeLog              = "log"
)

type DJJoinedEvent struct {
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	Ready     bool      `json:"ready"`
	JoinedAt  time.Time `json:"joined_at"`
}

type DJLeftEvent struct {
	UserID int `json:"user_id"`
}

type DJStatusEvent struct {
	UserID int  `json:"user_id"`
	Ready  bool `json:"ready"`
}

type TakeoverRequestEvent struct {
	RequesterID   int       `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	TargetID      int       `json:"target_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type TakeoverApprovedEvent struct {
	RequesterID int    `json:"requester_id"`
	TargetID    int    `json:"target_id"`
	StreamKey   string `json:"stream_key"`
	ServerURL   string `json:"server_url"`
}

type TakeoverDeclinedEvent struct {
	RequesterID int `json:"requester_id"`
	TargetID    int `json:"target_id"`
}

type TakeoverCancelledEvent struct {
	RequesterID int `json:"requester_id"`
	TargetID    int `json:"target_id"`
}

type StreamStartedEvent struct {
	DJID      int       `json:"dj_id"`
	DJName    string    `json:"dj_name"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
}

type StreamStoppedEvent struct {
	DJID int `json:"dj_id"`
}

type GiftCardMailEvent struct {
	Code           string `json:"code"`
	AmountCents    int    `json:"amount_cents"`
	RecipientEmail string `json:"recipient_email"`
	SenderName     string `json:"sender_name"`
	Message        string `json:"message"`
}

type OrderMailEvent struct {
	OrderID        string `json:"order_id"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	TotalCents     int    `json:"total_cents"`
	TrackingNumber string `json:"tracking_number,omitempty"`
}

type OrderPaidEvent struct {
	OrderID string          `json:"order_id"`
	UserID  int             `json:"user_id"`
	Items   json.RawMessage `json:"items"`
}
