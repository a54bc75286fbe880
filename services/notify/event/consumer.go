package event

import (
	"encoding/json"
	"fmt"
	"log"

	"wax/pkg/helper"
	"wax/pkg/mq"
	eventtypes "wax/pkg/types/eventtype"
	"wax/services/notify/mailer"
)

type Mailer interface {
	Send(email mailer.Email) error
}

type Consumer struct {
	rabbit *mq.RabbitMQ
	mailer Mailer
}

func NewConsumer(rabbit *mq.RabbitMQ, m Mailer) (*Consumer, error) {
	if err := rabbit.DeclareExchange(mq.ExchangeMailEvents, mq.ExchangeTypeTopic); err != nil {
		log.Printf("Failed to declare exchange %s: %v", mq.ExchangeMailEvents, err)
		return nil, err
	}

	if _, err := rabbit.DeclareQueue(mq.QueueMail, mq.ExchangeMailEvents, mq.RoutingKeyMailAll); err != nil {
		log.Printf("Failed to declare queue %s: %v", mq.QueueMail, err)
		return nil, err
	}

	return &Consumer{rabbit: rabbit, mailer: m}, nil
}

// Listen: 메일 큐 소비 시작
func (c *Consumer) Listen() error {
	if err := c.rabbit.ConsumeMessages(mq.QueueMail, c.HandleMessage); err != nil {
		return err
	}
	select {} // Block forever
}

// HandleMessage: 이벤트 타입별로 메일 발송
func (c *Consumer) HandleMessage(body []byte) {
	var eventPayload eventtypes.EventPayload
	if err := json.Unmarshal(body, &eventPayload); err != nil {
		log.Printf("Failed to unmarshal message: %v", err)
		return
	}

	log.Printf("Received Event Type: %s", eventPayload.EventType)

	switch eventPayload.EventType {
	case eventtypes.EventTypeMailGiftCard:
		if err := c.handleGiftCardEvent(eventPayload.Data); err != nil {
			log.Printf("Failed to handle gift card event: %v", err)
		}
	case eventtypes.EventTypeMailOrderPaid, eventtypes.EventTypeMailOrderShipped:
		if err := c.handleOrderEvent(eventPayload.Data); err != nil {
			log.Printf("Failed to handle order event: %v", err)
		}
	}
}

func (c *Consumer) handleGiftCardEvent(jsonData json.RawMessage) error {
	var event eventtypes.GiftCardMailEvent
	if err := json.Unmarshal(jsonData, &event); err != nil {
		return fmt.Errorf("failed to unmarshal gift card data: %w", err)
	}

	return c.mailer.Send(BuildGiftCardEmail(event))
}

func (c *Consumer) handleOrderEvent(jsonData json.RawMessage) error {
	var event eventtypes.OrderMailEvent
	if err := json.Unmarshal(jsonData, &event); err != nil {
		return fmt.Errorf("failed to unmarshal order data: %w", err)
	}

	return c.mailer.Send(BuildOrderEmail(event))
}

// BuildGiftCardEmail: 기프트 카드 안내 메일 본문 생성
func BuildGiftCardEmail(event eventtypes.GiftCardMailEvent) mailer.Email {
	body := fmt.Sprintf(
		"<h2>You received a FUTUREWAX gift card!</h2>"+
			"<p>%s sent you a gift card worth $%s.</p>"+
			"<p>Your code: <strong>%s</strong></p>",
		event.SenderName, helper.FormatCents(event.AmountCents), event.Code)

	if event.Message != "" {
		body += fmt.Sprintf("<blockquote>%s</blockquote>", event.Message)
	}

	return mailer.Email{
		To:       event.RecipientEmail,
		Subject:  "Your FUTUREWAX gift card",
		HtmlBody: body,
	}
}

// BuildOrderEmail: 주문 상태 안내 메일 본문 생성
func BuildOrderEmail(event eventtypes.OrderMailEvent) mailer.Email {
	var subject, body string

	switch event.Status {
	case "shipped":
		subject = fmt.Sprintf("Your order %s has shipped", event.OrderID)
		body = fmt.Sprintf(
			"<h2>Your order is on the way!</h2>"+
				"<p>Order %s has shipped.</p>"+
				"<p>Tracking number: <strong>%s</strong></p>",
			event.OrderID, event.TrackingNumber)
	default:
		subject = fmt.Sprintf("Order %s confirmed", event.OrderID)
		body = fmt.Sprintf(
			"<h2>Thanks for your order!</h2>"+
				"<p>We received your payment of $%s for order %s.</p>",
			helper.FormatCents(event.TotalCents), event.OrderID)
	}

	return mailer.Email{
		To:       event.Email,
		Subject:  subject,
		HtmlBody: body,
	}
}
