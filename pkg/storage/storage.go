package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type ObjectStorage struct {
	client    *minio.Client
	bucket    string
	cdnDomain string
}

// NewObjectStorage: S3 호환 오브젝트 스토리지 클라이언트 생성
func NewObjectStorage() (*ObjectStorage, error) {
	endpoint := os.Getenv("STORAGE_ENDPOINT")
	if endpoint == "" {
		endpoint = "wax-minio:9000"
	}
	accessKey := os.Getenv("STORAGE_ACCESS_KEY")
	secretKey := os.Getenv("STORAGE_SECRET_KEY")
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "media"
	}
	cdnDomain := os.Getenv("CDN_DOMAIN")
	if cdnDomain == "" {
		cdnDomain = "cdn.futurewax.net"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: os.Getenv("STORAGE_USE_SSL") == "true",
	})
	if err != nil {
		log.Printf("❌ Failed to create object storage client: %v", err)
		return nil, err
	}

	return &ObjectStorage{client: client, bucket: bucket, cdnDomain: cdnDomain}, nil
}

// Upload: 오브젝트 업로드 후 CDN URL 반환
func (s *ObjectStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %v", objectName, err)
	}

	return s.PublicURL(objectName), nil
}

// List: prefix로 오브젝트 목록 조회
func (s *ObjectStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects with prefix %s: %v", prefix, object.Err)
		}
		names = append(names, object.Key)
	}
	return names, nil
}

// PublicURL: CDN 도메인 기준 공개 URL
func (s *ObjectStorage) PublicURL(objectName string) string {
	return fmt.Sprintf("https://%s/%s", s.cdnDomain, strings.TrimPrefix(objectName, "/"))
}
