package service

import (
	"fmt"

	"wax/pkg/dto"
	"wax/pkg/models"
)

// Verifier: SNS 제공자별 access token 검증기
type Verifier interface {
	SnsType() int
	Verify(accessToken string) (string, error)
}

// UserClient: user 서비스 호출 클라이언트
type UserClient interface {
	FindOrCreate(user dto.UserDTO) (*models.User, error)
}

// SessionStore: Redis 세션 저장소
type SessionStore interface {
	CreateSession(userID int) (string, error)
	DeleteSession(sessionID string) error
}

type AuthService struct {
	users     UserClient
	sessions  SessionStore
	verifiers map[int]Verifier
}

func NewAuthService(users UserClient, sessions SessionStore, verifiers ...Verifier) *AuthService {
	byType := make(map[int]Verifier, len(verifiers))
	for _, v := range verifiers {
		byType[v.SnsType()] = v
	}

	return &AuthService{
		users:     users,
		sessions:  sessions,
		verifiers: byType,
	}
}

// Login: 토큰 검증 후 유저 확보, 세션 발급
func (s *AuthService) Login(snsType int, accessToken string) (string, *models.User, error) {
	verifier, ok := s.verifiers[snsType]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sns type: %d", snsType)
	}

	snsID, err := verifier.Verify(accessToken)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.FindOrCreate(dto.UserDTO{
		SnsType: snsType,
		SnsID:   snsID,
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to find or create user: %v", err)
	}

	sessionID, err := s.sessions.CreateSession(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session: %v", err)
	}

	return sessionID, user, nil
}

// Logout: 세션 제거
func (s *AuthService) Logout(sessionID string) error {
	return s.sessions.DeleteSession(sessionID)
}
