package service

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"alcyxob/training-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrBackupsDisabled = errors.New("backup storage is not configured")
	ErrBackupFailed    = errors.New("backup upload failed")
)

const backupKeyPrefix = "backups/"

// BackupService exports the record store as a JSON snapshot to object storage.
type BackupService interface {
	Export(ctx context.Context) (*domain.Backup, error)
}

type backupService struct {
	records       repository.WorkoutRecordRepository
	objects       storage.ObjectStorage // nil when no bucket is configured
	presignExpiry time.Duration
	now           func() time.Time
}

func NewBackupService(records repository.WorkoutRecordRepository, objects storage.ObjectStorage, presignExpiry time.Duration) BackupService {
	return &backupService{
		records:       records,
		objects:       objects,
		presignExpiry: presignExpiry,
		now:           time.Now,
	}
}

// Export writes the full key -> record map in the same layout as the local file store,
// so a snapshot can be dropped in as a data file.
func (s *backupService) Export(ctx context.Context) (*domain.Backup, error) {
	if s.objects == nil {
		return nil, ErrBackupsDisabled
	}

	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	createdAt := s.now().UTC()
	objectKey := fmt.Sprintf("%s%s-%s.json", backupKeyPrefix, createdAt.Format("20060102T150405Z"), uuid.NewString())

	if err := s.objects.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}

	backup := &domain.Backup{
		ObjectKey: objectKey,
		Records:   len(records),
		Size:      int64(len(body)),
		CreatedAt: createdAt,
	}

	url, err := s.objects.GeneratePresignedDownloadURL(ctx, objectKey, s.presignExpiry)
	if err != nil {
		// The snapshot is stored; the caller can still fetch it by key.
		log.Warnf("backup %s stored but presign failed: %s", objectKey, err)
	} else {
		backup.DownloadURL = url
	}

	log.Infof("exported %d workout records to %s", backup.Records, objectKey)
	return backup, nil
}
