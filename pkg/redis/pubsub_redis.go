package redis

import (
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// 실시간 브로드캐스트 채널 이름
const (
	ChannelLobby      = "lobby"
	ChannelLiveStatus = "live-status"
	ChannelUserFormat = "user:%d" // 유저별 프라이빗 채널
	ChannelUserGlob   = "user:*"  // 릴레이가 패턴 구독할 때 사용
)

func UserChannel(userID int) string {
	return fmt.Sprintf(ChannelUserFormat, userID)
}

// 채널로 이벤트 발행
func (r *RedisClient) Publish(channel string, payload []byte) error {
	err := r.Client.Publish(ctx, channel, payload).Err()
	if err != nil {
		log.Printf("Failed to publish to channel %s: %v", channel, err)
		return err
	}
	return nil
}

// 채널 구독
func (r *RedisClient) Subscribe(channels ...string) *redis.PubSub {
	return r.Client.Subscribe(ctx, channels...)
}

// 패턴 구독 (user:* 등)
func (r *RedisClient) PSubscribe(patterns ...string) *redis.PubSub {
	return r.Client.PSubscribe(ctx, patterns...)
}
