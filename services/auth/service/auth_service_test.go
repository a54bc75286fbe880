package service

import (
	"fmt"
	"testing"

	"wax/pkg/dto"
	"wax/pkg/models"
	"wax/pkg/types/commontype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	snsType int
	snsID   string
	err     error
}

func (f *fakeVerifier) SnsType() int { return f.snsType }

func (f *fakeVerifier) Verify(accessToken string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.snsID, nil
}

type fakeUserClient struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserClient() *fakeUserClient {
	return &fakeUserClient{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserClient) FindOrCreate(user dto.UserDTO) (*models.User, error) {
	key := fmt.Sprintf("%d:%s", user.SnsType, user.SnsID)
	if existing, ok := f.users[key]; ok {
		return existing, nil
	}

	created := &models.User{
		ID:      f.nextID,
		SnsType: user.SnsType,
		SnsID:   user.SnsID,
		Role:    commontype.RoleListener,
	}
	f.nextID++
	f.users[key] = created
	return created, nil
}

type fakeSessionStore struct {
	sessions map[string]int
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]int), nextID: 1}
}

func (f *fakeSessionStore) CreateSession(userID int) (string, error) {
	sessionID := fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.sessions[sessionID] = userID
	return sessionID, nil
}

func (f *fakeSessionStore) DeleteSession(sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func TestLoginCreatesSessionForNewUser(t *testing.T) {
	users := newFakeUserClient()
	sessions := newFakeSessionStore()
	svc := NewAuthService(users, sessions, &fakeVerifier{snsType: commontype.SnsTypeKakao, snsID: "kakao-1"})

	sessionID, user, err := svc.Login(commontype.SnsTypeKakao, "token")
	require.NoError(t, err)

	assert.NotEmpty(t, sessionID)
	assert.Equal(t, "kakao-1", user.SnsID)
	assert.Equal(t, user.ID, sessions.sessions[sessionID])
}

func TestLoginReusesExistingUser(t *testing.T) {
	users := newFakeUserClient()
	sessions := newFakeSessionStore()
	svc := NewAuthService(users, sessions, &fakeVerifier{snsType: commontype.SnsTypeKakao, snsID: "kakao-1"})

	_, first, err := svc.Login(commontype.SnsTypeKakao, "token")
	require.NoError(t, err)

	_, second, err := svc.Login(commontype.SnsTypeKakao, "token")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestLoginRejectsInvalidToken(t *testing.T) {
	svc := NewAuthService(newFakeUserClient(), newFakeSessionStore(),
		&fakeVerifier{snsType: commontype.SnsTypeKakao, err: fmt.Errorf("invalid kakao token")})

	_, _, err := svc.Login(commontype.SnsTypeKakao, "bad-token")
	assert.Error(t, err)
}

func TestLoginRejectsUnknownProvider(t *testing.T) {
	svc := NewAuthService(newFakeUserClient(), newFakeSessionStore(),
		&fakeVerifier{snsType: commontype.SnsTypeKakao, snsID: "kakao-1"})

	_, _, err := svc.Login(commontype.SnsTypeNaver, "token")
	assert.Error(t, err)
}

func TestLogoutRemovesSession(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := NewAuthService(newFakeUserClient(), sessions,
		&fakeVerifier{snsType: commontype.SnsTypeKakao, snsID: "kakao-1"})

	sessionID, _, err := svc.Login(commontype.SnsTypeKakao, "token")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(sessionID))
	_, ok := sessions.sessions[sessionID]
	assert.False(t, ok)
}
