package repository

import (
	"errors"
	"log"

	"wax/pkg/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) (*UserRepository, error) {
	// 데이터베이스 자동 마이그레이션 (테이블 생성)
	if err := db.AutoMigrate(&models.User{}, &models.RoleRequest{}); err != nil {
		log.Printf("Failed to migrate tables: %v", err)
		return nil, err
	}
	log.Println("Tables users and role_requests migrated or already exist.")

	return &UserRepository{DB: db}, nil
}

// 유저 생성 (삽입)
func (r *UserRepository) Insert(user models.User) (int, error) {
	if err := r.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to insert user: %v", err)
		return 0, err
	}
	return user.ID, nil
}

// 유저 조회
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("Failed to get user by ID %d: %v", id, err)
		return nil, err
	}
	return &user, nil
}

// 유저 조회 (sns_type과 sns_id를 기반으로 조회)
func (r *UserRepository) GetBySNS(snsType int, snsID string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("sns_type = ? AND sns_id = ?", snsType, snsID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("Failed to get user by SNS type %d and SNS ID %s: %v", snsType, snsID, err)
		return nil, err
	}
	return &user, nil
}

// 유저 업데이트
func (r *UserRepository) Update(user models.User) error {
	if err := r.DB.Model(&models.User{ID: user.ID}).Updates(user).Error; err != nil {
		log.Printf("Failed to update user ID %d: %v", user.ID, err)
		return err
	}
	return nil
}

// 역할만 업데이트
func (r *UserRepository) UpdateRole(userID int, role string) error {
	if err := r.DB.Model(&models.User{ID: userID}).Update("role", role).Error; err != nil {
		log.Printf("Failed to update role for user ID %d: %v", userID, err)
		return err
	}
	return nil
}

// 유저 삭제
func (r *UserRepository) Delete(id int) error {
	if err := r.DB.Delete(&models.User{}, id).Error; err != nil {
		log.Printf("Failed to delete user ID %d: %v", id, err)
		return err
	}
	return nil
}
