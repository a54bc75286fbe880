package redis

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// 세션 유효 기간
const SessionTTL = 24 * time.Hour

// 세션 생성 (로그인)
func (r *RedisClient) CreateSession(userID int) (string, error) {
	sessionID := uuid.NewString()
	err := r.Client.Set(ctx, sessionID, strconv.Itoa(userID), SessionTTL).Err()
	if err != nil {
		log.Printf("Failed to set session in Redis: %v", err)
		return "", err
	}
	return sessionID, nil
}

func (r *RedisClient) GetUserBySessionID(sessionID string) (int, error) {
	sUserID, err := r.Client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		log.Printf("sessionID is not exist in DB")
		return 0, fmt.Errorf("session not found")
	} else if err != nil {
		log.Printf("Get Session Error, %s", err.Error())
		return 0, err
	}

	userID, err := strconv.Atoi(sUserID)
	if err != nil {
		log.Printf("Failed to Atoi, user id: %s", sUserID)
		return 0, nil
	}

	return userID, nil
}

// 세션 삭제 (로그아웃)
func (r *RedisClient) DeleteSession(sessionID string) error {
	err := r.Client.Del(ctx, sessionID).Err()
	if err != nil {
		log.Printf("Failed to delete session %s: %v", sessionID, err)
		return err
	}
	return nil
}
