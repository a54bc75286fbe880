package dto

type CreateGiftCardDTO struct {
	AmountCents    int    `json:"amount_cents"`
	RecipientEmail string `json:"recipient_email"`
	SenderName     string `json:"sender_name"`
	Message        string `json:"message"`
}

type GiftCardBalanceDTO struct {
	Code         string `json:"code"`
	BalanceCents int    `json:"balance_cents"`
	Status       string `json:"status"`
}

type RedeemGiftCardDTO struct {
	Code        string `json:"code"`
	AmountCents int    `json:"amount_cents"`
}

type ProductDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int    `json:"price_cents"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
}

type VinylListingDTO struct {
	Artist     string `json:"artist"`
	Title      string `json:"title"`
	Label      string `json:"label"`
	Condition  string `json:"condition"`
	PriceCents int    `json:"price_cents"`
	ImageURL   string `json:"image_url"`
}

type OrderItemDTO struct {
	ItemID   string `json:"item_id"`
	Kind     string `json:"kind"`
	Quantity int    `json:"quantity"`
}

type CreateOrderDTO struct {
	Email string         `json:"email"`
	Items []OrderItemDTO `json:"items"`
}

type UpdateOrderStatusDTO struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number"`
}
