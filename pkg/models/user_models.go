package models

import (
	"time"
)

type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SnsType   int       `gorm:"index" json:"sns_type"`
	SnsID     string    `gorm:"size:100;index" json:"sns_id"`
	Name      string    `gorm:"size:100" json:"name"`
	Nickname  string    `gorm:"size:100" json:"nickname"`
	Email     string    `gorm:"size:100" json:"email"`
	Role      string    `gorm:"size:20;default:listener" json:"role"`
	AvatarURL string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 역할 변경 요청 상태
const (
	RoleRequestStatusPending  = "pending"
	RoleRequestStatusApproved = "approved"
	RoleRequestStatusDeclined = "declined"
)

// RoleRequest: listener가 DJ 권한을 신청하는 요청
type RoleRequest struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int       `gorm:"index" json:"user_id"`
	RequestedRole string    `gorm:"size:20" json:"requested_role"`
	Message       string    `gorm:"size:500" json:"message"`
	Status        string    `gorm:"size:20;default:pending;index" json:"status"`
	ReviewedBy    int       `json:"reviewed_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
