package models

import (
	"time"
)

// Presence: 로비에 접속한 DJ의 생존 기록
type Presence struct {
	UserID    int       `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	AvatarURL string    `bson:"avatar_url" json:"avatar_url"`
	Ready     bool      `bson:"ready" json:"ready"`
	JoinedAt  time.Time `bson:"joined_at" json:"joined_at"`
	LastSeen  time.Time `bson:"last_seen" json:"last_seen"`
}

// 테이크오버 요청 상태
const (
	TakeoverStatusPending  = "pending"
	TakeoverStatusApproved = "approved"
	TakeoverStatusDeclined = "declined"
	TakeoverStatusExpired  = "expired"
)

// TakeoverRequest: 방송 슬롯 양도 요청
// 정방향 문서는 target DJ id를 키로, 미러 문서는 request_{requesterID}를 키로 저장된다
type TakeoverRequest struct {
	Key           string    `bson:"key" json:"key"`
	RequesterID   int       `bson:"requester_id" json:"requester_id"`
	RequesterName string    `bson:"requester_name" json:"requester_name"`
	TargetID      int       `bson:"target_id" json:"target_id"`
	TargetName    string    `bson:"target_name" json:"target_name"`
	Status        string    `bson:"status" json:"status"`
	StreamKey     string    `bson:"stream_key,omitempty" json:"stream_key,omitempty"`
	ServerURL     string    `bson:"server_url,omitempty" json:"server_url,omitempty"`
	ExpiresAt     time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// IsExpired: 요청이 만료되었는지 확인
func (t *TakeoverRequest) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsPending: 아직 처리 가능한 요청인지 확인
func (t *TakeoverRequest) IsPending() bool {
	return t.Status == TakeoverStatusPending && !t.IsExpired()
}
