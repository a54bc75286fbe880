package event

import (
	"encoding/json"
	"log"

	"wax/pkg/redis"
	eventtypes "wax/pkg/types/eventtype"
)

type Emitter struct {
	redisClient *redis.RedisClient
}

func NewEmitter(redisClient *redis.RedisClient) *Emitter {
	return &Emitter{redisClient: redisClient}
}

// PublishLobby: 공개 로비 채널로 이벤트 발행
func (e *Emitter) PublishLobby(payload eventtypes.EventPayload) error {
	return e.publish(redis.ChannelLobby, payload)
}

// PublishUser: 유저 프라이빗 채널로 이벤트 발행
func (e *Emitter) PublishUser(userID int, payload eventtypes.EventPayload) error {
	return e.publish(redis.UserChannel(userID), payload)
}

// PublishLiveStatus: 공개 라이브 상태 채널로 이벤트 발행
func (e *Emitter) PublishLiveStatus(payload eventtypes.EventPayload) error {
	return e.publish(redis.ChannelLiveStatus, payload)
}

func (e *Emitter) publish(channel string, payload eventtypes.EventPayload) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to marshal lobby event: %v", err)
		return err
	}

	err = e.redisClient.Publish(channel, eventBytes)
	if err != nil {
		log.Printf("❌ Failed to publish lobby event to %s: %v", channel, err)
		return err
	}

	return nil
}
