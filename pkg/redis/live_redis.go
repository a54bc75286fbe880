package redis

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const liveDJKey = "live:current_dj"

// 현재 방송 중인 DJ 설정
func (r *RedisClient) SetLiveDJ(userID int) error {
	err := r.Client.Set(ctx, liveDJKey, userID, 0).Err()
	if err != nil {
		log.Printf("Failed to set live dj %d: %v", userID, err)
		return err
	}
	return nil
}

// 현재 방송 중인 DJ 조회, 없으면 0
func (r *RedisClient) GetLiveDJ() (int, error) {
	val, err := r.Client.Get(ctx, liveDJKey).Result()
	if err == redis.Nil {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to get live dj: %v", err)
	}

	userID, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("live dj value is not number: %s", val)
		return 0, nil
	}

	return userID, nil
}

func (r *RedisClient) ClearLiveDJ() error {
	return r.Client.Del(ctx, liveDJKey).Err()
}
