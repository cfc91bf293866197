package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the part of object storage used by uploads and report archiving
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetPresignedURL(ctx context.Context, objectName string) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// ObjectReader reads whole objects, used to load fixtures from a bucket
type ObjectReader interface {
	ReadObject(ctx context.Context, objectName string) ([]byte, error)
}

type MinioService struct {
	client *minio.Client
	bucket string
	config *config.MinioConfig
}

func NewMinioService(cfg *config.MinioConfig) (*MinioService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioService{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *MinioService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// UploadFile stores reader under objectName
func (s *MinioService) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	return nil
}

// ReadObject downloads a whole object into memory, bounded by maxFixtureBytes
func (s *MinioService) ReadObject(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxFixtureBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	return data, nil
}

// GetPresignedURL generates a presigned URL for the object with expiration
func (s *MinioService) GetPresignedURL(ctx context.Context, objectName string) (string, error) {
	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// DeleteFile deletes a file from MINIO
func (s *MinioService) DeleteFile(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// MinioFixtureSource reads the fixtures as objects under a bucket prefix
type MinioFixtureSource struct {
	reader     ObjectReader
	prefix     string
	listFile   string
	detailFile string
}

func NewMinioFixtureSource(reader ObjectReader, cfg *config.FixturesConfig) *MinioFixtureSource {
	return &MinioFixtureSource{
		reader:     reader,
		prefix:     cfg.Prefix,
		listFile:   cfg.ListFile,
		detailFile: cfg.DetailFile,
	}
}

func (s *MinioFixtureSource) Contracts(ctx context.Context) ([]model.Contract, error) {
	data, err := s.reader.ReadObject(ctx, path.Join(s.prefix, s.listFile))
	if err != nil {
		return nil, err
	}
	return decodeContracts(data)
}

func (s *MinioFixtureSource) Details(ctx context.Context) (map[string]model.ContractDetail, error) {
	data, err := s.reader.ReadObject(ctx, path.Join(s.prefix, s.detailFile))
	if err != nil {
		return nil, err
	}
	return decodeDetails(data)
}
