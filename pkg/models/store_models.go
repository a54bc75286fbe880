package models

import (
	"time"
)

// 기프트 카드 상태
const (
	GiftCardStatusActive   = "active"
	GiftCardStatusDepleted = "depleted"
	GiftCardStatusDisabled = "disabled"
)

type GiftCard struct {
	Code           string    `bson:"code" json:"code"`
	InitialCents   int       `bson:"initial_cents" json:"initial_cents"`
	BalanceCents   int       `bson:"balance_cents" json:"balance_cents"`
	Status         string    `bson:"status" json:"status"`
	PurchaserID    int       `bson:"purchaser_id" json:"purchaser_id"`
	RecipientEmail string    `bson:"recipient_email" json:"recipient_email"`
	SenderName     string    `bson:"sender_name" json:"sender_name"`
	Message        string    `bson:"message" json:"message"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

type Product struct {
	ID          string    `bson:"id" json:"id"` // UUID 사용
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	PriceCents  int       `bson:"price_cents" json:"price_cents"`
	Stock       int       `bson:"stock" json:"stock"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// 바이닐 리스팅 상태
const (
	ListingStatusActive  = "active"
	ListingStatusSold    = "sold"
	ListingStatusRemoved = "removed"
)

type VinylListing struct {
	ID         string    `bson:"id" json:"id"` // UUID 사용
	SellerID   int       `bson:"seller_id" json:"seller_id"`
	Artist     string    `bson:"artist" json:"artist"`
	Title      string    `bson:"title" json:"title"`
	Label      string    `bson:"label" json:"label"`
	Condition  string    `bson:"condition" json:"condition"` // M, NM, VG+, VG, G
	PriceCents int       `bson:"price_cents" json:"price_cents"`
	ImageURL   string    `bson:"image_url" json:"image_url"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// 주문 상태
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	ItemID     string `bson:"item_id" json:"item_id"`
	Kind       string `bson:"kind" json:"kind"` // merch, vinyl, digital
	Title      string `bson:"title" json:"title"`
	PriceCents int    `bson:"price_cents" json:"price_cents"`
	Quantity   int    `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID             string      `bson:"id" json:"id"` // UUID 사용
	UserID         int         `bson:"user_id" json:"user_id"`
	Email          string      `bson:"email" json:"email"`
	Items          []OrderItem `bson:"items" json:"items"`
	TotalCents     int         `bson:"total_cents" json:"total_cents"`
	Status         string      `bson:"status" json:"status"`
	TrackingNumber string      `bson:"tracking_number,omitempty" json:"tracking_number,omitempty"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `bson:"updated_at" json:"updated_at"`
}

// 주문 상태 전이 테이블
var orderTransitions = map[string][]string{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusDelivered},
}

// CanTransition: 주문 상태 전이가 허용되는지 확인
func (o *Order) CanTransition(next string) bool {
	for _, allowed := range orderTransitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
