package service

import (
	"fmt"

	"wax/pkg/dto"
	"wax/pkg/models"
	"wax/pkg/types/commontype"
)

type UserRepo interface {
	Insert(user models.User) (int, error)
	GetByID(id int) (*models.User, error)
	GetBySNS(snsType int, snsID string) (*models.User, error)
	Update(user models.User) error
	Delete(id int) error
}

type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register: 신규 유저 생성, 역할은 listener로 시작
func (s *UserService) Register(req dto.UserDTO) (*models.User, error) {
	if req.SnsID == "" {
		return nil, fmt.Errorf("sns id is required")
	}

	existing, err := s.repo.GetBySNS(req.SnsType, req.SnsID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user already registered")
	}

	user := models.User{
		SnsType:   req.SnsType,
		SnsID:     req.SnsID,
		Name:      req.Name,
		Nickname:  req.Nickname,
		Email:     req.Email,
		Role:      commontype.RoleListener,
		AvatarURL: req.AvatarURL,
	}

	id, err := s.repo.Insert(user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return &user, nil
}

func (s *UserService) Get(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *UserService) GetBySNS(snsType int, snsID string) (*models.User, error) {
	return s.repo.GetBySNS(snsType, snsID)
}

// FindOrCreate: SNS 식별자로 조회, 없으면 생성 (로그인 플로우용)
func (s *UserService) FindOrCreate(req dto.UserDTO) (*models.User, bool, error) {
	existing, err := s.repo.GetBySNS(req.SnsType, req.SnsID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err := s.Register(req)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// UpdateProfile: 역할은 이 경로로 바꿀 수 없음
func (s *UserService) UpdateProfile(userID int, req dto.UserDTO) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	user.Name = req.Name
	user.Nickname = req.Nickname
	user.Email = req.Email
	user.AvatarURL = req.AvatarURL

	if err := s.repo.Update(*user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(id int) error {
	return s.repo.Delete(id)
}
