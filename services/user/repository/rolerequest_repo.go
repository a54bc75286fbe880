package repository

import (
	"errors"
	"log"

	"wax/pkg/models"

	"gorm.io/gorm"
)

type RoleRequestRepository struct {
	DB *gorm.DB
}

func NewRoleRequestRepository(db *gorm.DB) *RoleRequestRepository {
	return &RoleRequestRepository{DB: db}
}

func (r *RoleRequestRepository) Insert(request models.RoleRequest) (int, error) {
	if err := r.DB.Create(&request).Error; err != nil {
		log.Printf("Failed to insert role request: %v", err)
		return 0, err
	}
	return request.ID, nil
}

func (r *RoleRequestRepository) GetByID(id int) (*models.RoleRequest, error) {
	var request models.RoleRequest
	err := r.DB.First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("Failed to get role request by ID %d: %v", id, err)
		return nil, err
	}
	return &request, nil
}

// GetPendingByUser: 유저의 대기 중인 요청 조회
func (r *RoleRequestRepository) GetPendingByUser(userID int) (*models.RoleRequest, error) {
	var request models.RoleRequest
	err := r.DB.Where("user_id = ? AND status = ?", userID, models.RoleRequestStatusPending).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("Failed to get pending role request for user ID %d: %v", userID, err)
		return nil, err
	}
	return &request, nil
}

// ListPending: 대기 중인 요청 전체 목록 (관리자용)
func (r *RoleRequestRepository) ListPending() ([]models.RoleRequest, error) {
	var requests []models.RoleRequest
	err := r.DB.Where("status = ?", models.RoleRequestStatusPending).Order("created_at asc").Find(&requests).Error
	if err != nil {
		log.Printf("Failed to list pending role requests: %v", err)
		return nil, err
	}
	return requests, nil
}

// UpdateStatus: 요청 상태와 검토자 기록
func (r *RoleRequestRepository) UpdateStatus(id int, status string, reviewedBy int) error {
	err := r.DB.Model(&models.RoleRequest{ID: id}).Updates(map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewedBy,
	}).Error
	if err != nil {
		log.Printf("Failed to update role request ID %d: %v", id, err)
		return err
	}
	return nil
}
