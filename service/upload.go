package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedFileType = errors.New("only PDF, DOC and DOCX files are allowed")
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUploadFailed        = errors.New("upload failed")
	ErrUploadNotFound      = errors.New("upload not found")
)

var allowedUploadTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// UploadService accepts contract documents. It simulates an unreliable
// transport by failing a configurable share of uploads at random.
type UploadService struct {
	store       *UploadStore
	objects     ObjectStore // nil keeps records only
	maxSize     int64
	failureRate float64

	// Rand returns a value in [0,1); replaced in tests
	Rand func() float64
	now  func() time.Time
}

func NewUploadService(cfg *config.UploadConfig, store *UploadStore, objects ObjectStore) *UploadService {
	return &UploadService{
		store:       store,
		objects:     objects,
		maxSize:     int64(cfg.MaxSizeMB) << 20,
		failureRate: cfg.FailureRate,
		Rand:        rand.Float64,
		now:         time.Now,
	}
}

// ContentTypeFor returns the canonical content type for an allowed file name
func ContentTypeFor(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := allowedUploadTypes[ext]
	if !ok {
		return "", ErrUnsupportedFileType
	}
	return ct, nil
}

// Upload validates and stores one document for owner
func (s *UploadService) Upload(ctx context.Context, owner, filename string, size int64, r io.Reader) (*model.UploadRecord, error) {
	contentType, err := ContentTypeFor(filename)
	if err != nil {
		return nil, err
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, fmt.Errorf("%w (%d MB)", ErrFileTooLarge, s.maxSize>>20)
	}

	record := &model.UploadRecord{
		ID:         uuid.New().String(),
		Name:       filepath.Base(filename),
		Size:       size,
		Type:       contentType,
		Owner:      owner,
		UploadedAt: s.now(),
	}

	if s.failureRate > 0 && s.Rand() < s.failureRate {
		record.Status = model.UploadFailed
		record.ErrorMsg = ErrUploadFailed.Error()
		s.store.Save(record)
		logger.Warn(ctx, "simulated upload failure", "upload_id", record.ID, "file", record.Name)
		return record, ErrUploadFailed
	}

	if s.objects != nil {
		record.ObjectName = fmt.Sprintf("uploads/%s/%s/%s", owner, record.ID, record.Name)
		if err := s.objects.UploadFile(ctx, record.ObjectName, r, size, contentType); err != nil {
			record.Status = model.UploadFailed
			record.ErrorMsg = err.Error()
			s.store.Save(record)
			return record, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
		url, err := s.objects.GetPresignedURL(ctx, record.ObjectName)
		if err != nil {
			logger.Warn(ctx, "failed to presign upload", "upload_id", record.ID, "error", err)
		}
		record.URL = url
	}

	record.Status = model.UploadSuccess
	s.store.Save(record)
	logger.Info(ctx, "document uploaded", "upload_id", record.ID, "file", record.Name, "size", size)
	return record, nil
}

// List returns the owner's uploads, newest first
func (s *UploadService) List(owner string) []*model.UploadRecord {
	return s.store.GetByOwner(owner)
}

// Delete removes an upload owned by owner, including its stored object
func (s *UploadService) Delete(ctx context.Context, owner, id string) error {
	record := s.store.Get(id)
	if record == nil || record.Owner != owner {
		return ErrUploadNotFound
	}
	if s.objects != nil && record.ObjectName != "" {
		if err := s.objects.DeleteFile(ctx, record.ObjectName); err != nil {
			return err
		}
	}
	s.store.Delete(id)
	return nil
}
