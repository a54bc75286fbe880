package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objects[objectName] = data
	return f.PublicURL(objectName), nil
}

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for name := range f.objects {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (f *fakeStorage) PublicURL(objectName string) string {
	return "https://cdn.futurewax.net/" + objectName
}

func TestUploadStoresUnderPrefixWithExtension(t *testing.T) {
	storage := newFakeStorage()
	svc := NewMediaService(storage)

	url, err := svc.Upload(context.Background(), "covers", "album.PNG", strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)

	assert.Contains(t, url, "https://cdn.futurewax.net/covers/")
	assert.True(t, strings.HasSuffix(url, ".png"))
	require.Len(t, storage.objects, 1)
}

func TestUploadRejectsUnknownPrefix(t *testing.T) {
	svc := NewMediaService(newFakeStorage())

	_, err := svc.Upload(context.Background(), "secrets", "x.png", strings.NewReader("img"), 3, "image/png")
	assert.Error(t, err)
}

func TestUploadRejectsBadSize(t *testing.T) {
	svc := NewMediaService(newFakeStorage())

	_, err := svc.Upload(context.Background(), "covers", "x.png", strings.NewReader(""), 0, "image/png")
	assert.Error(t, err)

	_, err = svc.Upload(context.Background(), "covers", "x.png", strings.NewReader("img"), maxUploadBytes+1, "image/png")
	assert.Error(t, err)
}

func TestListReturnsPublicURLs(t *testing.T) {
	storage := newFakeStorage()
	storage.objects["covers/a.png"] = []byte("a")
	storage.objects["avatars/b.png"] = []byte("b")
	svc := NewMediaService(storage)

	urls, err := svc.List(context.Background(), "covers")
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://cdn.futurewax.net/covers/a.png", urls[0])
}
