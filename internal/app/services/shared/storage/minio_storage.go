package storage

import (
	"context"
	"fmt"
	"io"

	"aura-service/internal/app/config"
	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client         *minio.Client
	internalConfig *config.InternalConfig
}

func NewMinioStorage(client *minio.Client, internalConfig *config.InternalConfig) contracts.Storage {
	return &minioStorage{
		client:         client,
		internalConfig: internalConfig,
	}
}

func (s *minioStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return "", exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	_, err = s.client.PutObject(ctx, bucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	objectURL := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), bucketName, objectName)
	return objectURL, nil
}
