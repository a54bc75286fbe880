package service

import (
	"fmt"

	"wax/pkg/dto"
	"wax/pkg/models"
	"wax/pkg/types/commontype"
)

type RoleRequestRepo interface {
	Insert(request models.RoleRequest) (int, error)
	GetByID(id int) (*models.RoleRequest, error)
	GetPendingByUser(userID int) (*models.RoleRequest, error)
	ListPending() ([]models.RoleRequest, error)
	UpdateStatus(id int, status string, reviewedBy int) error
}

type RoleUpdater interface {
	GetByID(id int) (*models.User, error)
	UpdateRole(userID int, role string) error
}

type RoleService struct {
	requests RoleRequestRepo
	users    RoleUpdater
}

func NewRoleService(requests RoleRequestRepo, users RoleUpdater) *RoleService {
	return &RoleService{
		requests: requests,
		users:    users,
	}
}

// Submit: DJ 권한 신청, 유저당 대기 중 요청은 하나만
func (s *RoleService) Submit(userID int, req dto.RoleRequestDTO) (*models.RoleRequest, error) {
	if req.RequestedRole != commontype.RoleDJ {
		return nil, fmt.Errorf("only dj role can be requested")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.Role == commontype.RoleDJ || user.Role == commontype.RoleAdmin {
		return nil, fmt.Errorf("user already has dj access")
	}

	pending, err := s.requests.GetPendingByUser(userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("role request already pending")
	}

	request := models.RoleRequest{
		UserID:        userID,
		RequestedRole: req.RequestedRole,
		Message:       req.Message,
		Status:        models.RoleRequestStatusPending,
	}

	id, err := s.requests.Insert(request)
	if err != nil {
		return nil, err
	}
	request.ID = id

	return &request, nil
}

// MyPending: 내 대기 중인 요청 조회
func (s *RoleService) MyPending(userID int) (*models.RoleRequest, error) {
	return s.requests.GetPendingByUser(userID)
}

// ListPending: 관리자 전용 대기 목록
func (s *RoleService) ListPending(reviewerID int) ([]models.RoleRequest, error) {
	if err := s.requireAdmin(reviewerID); err != nil {
		return nil, err
	}

	requests, err := s.requests.ListPending()
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.RoleRequest{}
	}
	return requests, nil
}

// Review: 승인 시 유저 역할 변경, 거절 시 상태만 갱신
func (s *RoleService) Review(reviewerID, requestID int, req dto.ReviewRoleRequestDTO) (*models.RoleRequest, error) {
	if err := s.requireAdmin(reviewerID); err != nil {
		return nil, err
	}

	request, err := s.requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("role request not found")
	}
	if request.Status != models.RoleRequestStatusPending {
		return nil, fmt.Errorf("role request already reviewed")
	}

	status := models.RoleRequestStatusDeclined
	if req.Approve {
		status = models.RoleRequestStatusApproved
	}

	if err := s.requests.UpdateStatus(requestID, status, reviewerID); err != nil {
		return nil, err
	}

	if req.Approve {
		if err := s.users.UpdateRole(request.UserID, request.RequestedRole); err != nil {
			return nil, err
		}
	}

	request.Status = status
	request.ReviewedBy = reviewerID

	return request, nil
}

func (s *RoleService) requireAdmin(userID int) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != commontype.RoleAdmin {
		return fmt.Errorf("admin role required")
	}
	return nil
}
