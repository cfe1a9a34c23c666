package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"kig-backend/internal/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioBlobStorage stores photos in an S3-compatible object store.
// The container (bucket) is created on first use if absent.
type MinioBlobStorage struct {
	client    *minio.Client
	container string
}

func NewMinioBlobStorage(endpoint, accessKey, secretKey, container string, useSSL bool) (*MinioBlobStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}
	return &MinioBlobStorage{client: client, container: container}, nil
}

func (s *MinioBlobStorage) Upload(ctx context.Context, data []byte, fileName, scopeID string) (string, error) {
	if err := s.ensureContainer(ctx); err != nil {
		return "", err
	}

	objectName := scopeID + "/" + fileName
	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.container, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", objectName, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.container, objectName)
	logger.Debug("Blob uploaded", "object", objectName, "size", len(data))
	return url, nil
}

func (s *MinioBlobStorage) ensureContainer(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.container)
	if err != nil {
		return fmt.Errorf("failed to check container: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.container, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	logger.Info("Blob container created", "container", s.container)
	return nil
}
