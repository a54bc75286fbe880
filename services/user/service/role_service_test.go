package service

import (
	"testing"

	"wax/pkg/dto"
	"wax/pkg/models"
	"wax/pkg/types/commontype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[int]models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]models.User), nextID: 1}
}

func (f *fakeUserRepo) Insert(user models.User) (int, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) GetBySNS(snsType int, snsID string) (*models.User, error) {
	for _, user := range f.users {
		if user.SnsType == snsType && user.SnsID == snsID {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(user models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateRole(userID int, role string) error {
	user := f.users[userID]
	user.Role = role
	f.users[userID] = user
	return nil
}

func (f *fakeUserRepo) Delete(id int) error {
	delete(f.users, id)
	return nil
}

type fakeRoleRequestRepo struct {
	requests map[int]models.RoleRequest
	nextID   int
}

func newFakeRoleRequestRepo() *fakeRoleRequestRepo {
	return &fakeRoleRequestRepo{requests: make(map[int]models.RoleRequest), nextID: 1}
}

func (f *fakeRoleRequestRepo) Insert(request models.RoleRequest) (int, error) {
	request.ID = f.nextID
	f.nextID++
	f.requests[request.ID] = request
	return request.ID, nil
}

func (f *fakeRoleRequestRepo) GetByID(id int) (*models.RoleRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (f *fakeRoleRequestRepo) GetPendingByUser(userID int) (*models.RoleRequest, error) {
	for _, request := range f.requests {
		if request.UserID == userID && request.Status == models.RoleRequestStatusPending {
			return &request, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRequestRepo) ListPending() ([]models.RoleRequest, error) {
	var requests []models.RoleRequest
	for _, request := range f.requests {
		if request.Status == models.RoleRequestStatusPending {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (f *fakeRoleRequestRepo) UpdateStatus(id int, status string, reviewedBy int) error {
	request := f.requests[id]
	request.Status = status
	request.ReviewedBy = reviewedBy
	f.requests[id] = request
	return nil
}

func newRoleFixture() (*RoleService, *fakeUserRepo, *fakeRoleRequestRepo) {
	users := newFakeUserRepo()
	requests := newFakeRoleRequestRepo()

	users.Insert(models.User{SnsID: "listener-1", Role: commontype.RoleListener}) // ID 1
	users.Insert(models.User{SnsID: "admin-1", Role: commontype.RoleAdmin})      // ID 2

	return NewRoleService(requests, users), users, requests
}

func TestSubmitRoleRequest(t *testing.T) {
	svc, _, _ := newRoleFixture()

	request, err := svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ, Message: "weekly house sets"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleRequestStatusPending, request.Status)
	assert.Equal(t, 1, request.UserID)

	// 대기 중 요청은 하나만
	_, err = svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ})
	assert.Error(t, err)
}

func TestSubmitRejectsInvalidRole(t *testing.T) {
	svc, _, _ := newRoleFixture()

	_, err := svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleAdmin})
	assert.Error(t, err)

	// DJ는 재신청 불가
	_, err = svc.Submit(2, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ})
	assert.Error(t, err)
}

func TestApprovePromotesUser(t *testing.T) {
	svc, users, _ := newRoleFixture()

	request, err := svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ})
	require.NoError(t, err)

	reviewed, err := svc.Review(2, request.ID, dto.ReviewRoleRequestDTO{Approve: true})
	require.NoError(t, err)
	assert.Equal(t, models.RoleRequestStatusApproved, reviewed.Status)
	assert.Equal(t, 2, reviewed.ReviewedBy)

	user, err := users.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, commontype.RoleDJ, user.Role)
}

func TestDeclineKeepsRole(t *testing.T) {
	svc, users, _ := newRoleFixture()

	request, err := svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ})
	require.NoError(t, err)

	reviewed, err := svc.Review(2, request.ID, dto.ReviewRoleRequestDTO{Approve: false})
	require.NoError(t, err)
	assert.Equal(t, models.RoleRequestStatusDeclined, reviewed.Status)

	user, err := users.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, commontype.RoleListener, user.Role)
}

func TestReviewRequiresAdmin(t *testing.T) {
	svc, _, _ := newRoleFixture()

	request, err := svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ})
	require.NoError(t, err)

	_, err = svc.Review(1, request.ID, dto.ReviewRoleRequestDTO{Approve: true})
	assert.Error(t, err)

	_, err = svc.ListPending(1)
	assert.Error(t, err)
}

func TestReviewIsAtMostOnce(t *testing.T) {
	svc, _, _ := newRoleFixture()

	request, err := svc.Submit(1, dto.RoleRequestDTO{RequestedRole: commontype.RoleDJ})
	require.NoError(t, err)

	_, err = svc.Review(2, request.ID, dto.ReviewRoleRequestDTO{Approve: true})
	require.NoError(t, err)

	// 이미 검토된 요청은 다시 검토 불가
	_, err = svc.Review(2, request.ID, dto.ReviewRoleRequestDTO{Approve: false})
	assert.Error(t, err)
}

func TestFindOrCreate(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	user, created, err := svc.FindOrCreate(dto.UserDTO{SnsType: 1, SnsID: "kakao-99", Name: "Mina"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, commontype.RoleListener, user.Role)

	again, created, err := svc.FindOrCreate(dto.UserDTO{SnsType: 1, SnsID: "kakao-99"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
}
