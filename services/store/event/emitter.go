package event

import (
	"encoding/json"
	"fmt"

	"wax/pkg/mq"
	eventtypes "wax/pkg/types/eventtype"
)

// Emitter는 커머스 이벤트를 RabbitMQ로 발행합니다
type Emitter struct {
	rabbit *mq.RabbitMQ
}

func NewEmitter(rabbit *mq.RabbitMQ) (*Emitter, error) {
	if err := rabbit.DeclareExchange(mq.ExchangeMailEvents, mq.ExchangeTypeTopic); err != nil {
		return nil, fmt.Errorf("failed to declare mail exchange: %v", err)
	}
	if err := rabbit.DeclareExchange(mq.ExchangeOrderEvents, mq.ExchangeTypeTopic); err != nil {
		return nil, fmt.Errorf("failed to declare order exchange: %v", err)
	}

	return &Emitter{rabbit: rabbit}, nil
}

func (e *Emitter) publish(exchange, routingKey, eventType string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %v", eventType, err)
	}

	payload, err := json.Marshal(eventtypes.EventPayload{
		EventType: eventType,
		Data:      raw,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %v", err)
	}

	return e.rabbit.PublishMessage(exchange, routingKey, payload)
}

// PublishGiftCardMail: 기프트 카드 발송 메일 이벤트
func (e *Emitter) PublishGiftCardMail(event eventtypes.GiftCardMailEvent) error {
	return e.publish(mq.ExchangeMailEvents, mq.RoutingKeyMailGiftCard, eventtypes.EventTypeMailGiftCard, event)
}

// PublishOrderMail: 주문 상태 메일 이벤트 (paid, shipped)
func (e *Emitter) PublishOrderMail(event eventtypes.OrderMailEvent) error {
	routingKey := mq.RoutingKeyMailOrderPaid
	eventType := eventtypes.EventTypeMailOrderPaid
	if event.Status == "shipped" {
		routingKey = mq.RoutingKeyMailOrderShipped
		eventType = eventtypes.EventTypeMailOrderShipped
	}
	return e.publish(mq.ExchangeMailEvents, routingKey, eventType, event)
}

// PublishOrderPaid: 결제 완료 이벤트 (재고 처리용)
func (e *Emitter) PublishOrderPaid(event eventtypes.OrderPaidEvent) error {
	return e.publish(mq.ExchangeOrderEvents, mq.RoutingKeyOrderPaid, eventtypes.EventTypeOrderPaid, event)
}
