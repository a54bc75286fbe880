package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"wax/pkg/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// 업로드를 허용하는 prefix 목록
var allowedPrefixes = map[string]bool{
	"covers":   true, // 릴리즈/상품 커버 이미지
	"avatars":  true, // 유저 아바타
	"vinyl":    true, // 중고 바이닐 사진
	"releases": true, // 디지털 릴리즈 오디오 파일
}

const maxUploadBytes = 50 << 20 // 50MB

type Storage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
	PublicURL(objectName string) string
}

type MediaService struct {
	storage Storage
}

func NewMediaService(storage Storage) *MediaService {
	return &MediaService{storage: storage}
}

// Upload: prefix 검증 후 유니크 이름으로 저장, CDN URL 반환
func (s *MediaService) Upload(ctx context.Context, prefix, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if !allowedPrefixes[prefix] {
		return "", fmt.Errorf("unknown media prefix: %s", prefix)
	}
	if size <= 0 || size > maxUploadBytes {
		return "", fmt.Errorf("invalid upload size: %d", size)
	}

	ext := strings.ToLower(path.Ext(filename))
	objectName := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)

	url, err := s.storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		logger.Error(logger.LogEventError, "Failed to upload media object", map[string]interface{}{
			"object": objectName,
		})
		return "", err
	}

	return url, nil
}

// List: prefix별 공개 URL 목록
func (s *MediaService) List(ctx context.Context, prefix string) ([]string, error) {
	if !allowedPrefixes[prefix] {
		return nil, fmt.Errorf("unknown media prefix: %s", prefix)
	}

	names, err := s.storage.List(ctx, prefix+"/")
	if err != nil {
		return nil, err
	}

	urls := lo.Map(names, func(name string, _ int) string {
		return s.storage.PublicURL(name)
	})

	return urls, nil
}
