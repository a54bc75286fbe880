package dto

import "time"

type JoinLobbyDTO struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Ready     bool   `json:"ready"`
}

type HeartbeatDTO struct {
	Ready bool `json:"ready"`
}

type OnlineDJDTO struct {
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	Ready     bool      `json:"ready"`
	LastSeen  time.Time `json:"last_seen"`
}

type TakeoverRequestDTO struct {
	TargetID int `json:"target_id"`
}

type TakeoverStateDTO struct {
	RequesterID   int       `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	TargetID      int       `json:"target_id"`
	TargetName    string    `json:"target_name"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// 승인 시 요청자에게 전달되는 방송 접속 정보
type StreamGrantDTO struct {
	StreamKey string `json:"stream_key"`
	ServerURL string `json:"server_url"`
}
