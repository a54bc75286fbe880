package event

import (
	"encoding/json"
	"log"

	"wax/pkg/models"
	"wax/pkg/mq"
	eventtypes "wax/pkg/types/eventtype"
)

type LogStore interface {
	Insert(entry models.BaseLog) error
}

type Consumer struct {
	rabbit *mq.RabbitMQ
	store  LogStore
}

func NewConsumer(rabbit *mq.RabbitMQ, store LogStore) (*Consumer, error) {
	if err := rabbit.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
		log.Printf("Failed to declare exchange %s: %v", mq.ExchangeLog, err)
		return nil, err
	}

	// fanout은 라우팅 키 없이 바인딩
	if _, err := rabbit.DeclareQueue(mq.QueueLog, mq.ExchangeLog, ""); err != nil {
		log.Printf("Failed to declare queue %s: %v", mq.QueueLog, err)
		return nil, err
	}

	return &Consumer{rabbit: rabbit, store: store}, nil
}

// Listen: 로그 큐 소비 시작
func (c *Consumer) Listen() error {
	if err := c.rabbit.ConsumeMessages(mq.QueueLog, c.HandleMessage); err != nil {
		return err
	}
	select {} // Block forever
}

// HandleMessage: 로그 이벤트를 Mongo에 적재
func (c *Consumer) HandleMessage(body []byte) {
	var eventPayload eventtypes.EventPayload
	if err := json.Unmarshal(body, &eventPayload); err != nil {
		log.Printf("Failed to unmarshal message: %v", err)
		return
	}

	if eventPayload.EventType != eventtypes.EventTypeLog {
		return
	}

	var entry models.BaseLog
	if err := json.Unmarshal(eventPayload.Data, &entry); err != nil {
		log.Printf("Failed to unmarshal log data: %v", err)
		return
	}

	if err := c.store.Insert(entry); err != nil {
		log.Printf("Failed to insert log: %v", err)
	}
}
