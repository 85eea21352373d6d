package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"organizer/internal/apperr"
	"organizer/internal/helpers"
	"organizer/internal/models"
	"organizer/internal/repository"

	"github.com/google/uuid"
)

const (
	photoKeyPrefix     = "box-photos"
	uploadAttempts     = 3
	uploadRetryBackoff = 200 * time.Millisecond
)

type PhotoService interface {
	AttachPhoto(ownerID, boxID string, fileHeader *multipart.FileHeader) (*models.BoxPhoto, error)
	ListPhotos(ownerID, boxID string) ([]models.BoxPhoto, error)
	DeletePhoto(ownerID, id string) error
}

type photoServiceImpl struct {
	photoRepo  repository.PhotoRepository
	boxRepo    repository.BoxRepository
	storage    StorageService
	logService LogService
}

func NewPhotoService(
	photoRepo repository.PhotoRepository,
	boxRepo repository.BoxRepository,
	storage StorageService,
	logService LogService,
) PhotoService {
	return &photoServiceImpl{
		photoRepo:  photoRepo,
		boxRepo:    boxRepo,
		storage:    storage,
		logService: logService,
	}
}

// AttachPhoto stores the blob and records the photo row. The blob write is
// retried on failure up to the attempt budget with a fixed backoff; after
// that the upload surfaces ErrUploadFailed. Photos already attached to the
// box are left untouched either way.
func (s *photoServiceImpl) AttachPhoto(ownerID, boxID string, fileHeader *multipart.FileHeader) (*models.BoxPhoto, error) {
	box, err := s.boxRepo.FindByIDForOwner(boxID, ownerID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, apperr.ErrNotFound
	}

	key := fmt.Sprintf("%s/%s%s", photoKeyPrefix, uuid.NewString(), helpers.PhotoExtension(fileHeader.Filename))
	photoURL, err := s.saveWithRetry(key, fileHeader)
	if err != nil {
		return nil, errors.Join(apperr.ErrUploadFailed, err)
	}

	photo := &models.BoxPhoto{
		BoxID:    box.ID,
		PhotoURL: photoURL,
		OwnerID:  ownerID,
	}
	if err := s.photoRepo.Create(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoServiceImpl) saveWithRetry(key string, fileHeader *multipart.FileHeader) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		src, err := fileHeader.Open()
		if err != nil {
			return "", err
		}
		photoURL, err := s.storage.Save(key, src)
		_ = src.Close()
		if err == nil {
			return photoURL, nil
		}
		lastErr = err
		s.logService.Log.WithField("attempt", attempt).WithError(err).Warn("photo upload attempt failed")
		if attempt < uploadAttempts {
			time.Sleep(uploadRetryBackoff)
		}
	}
	return "", lastErr
}

func (s *photoServiceImpl) ListPhotos(ownerID, boxID string) ([]models.BoxPhoto, error) {
	return s.photoRepo.FindByBoxIDForOwner(boxID, ownerID)
}

// DeletePhoto removes the row, then the blob best effort. A blob that
// cannot be removed is left for the janitor sweep.
func (s *photoServiceImpl) DeletePhoto(ownerID, id string) error {
	photo, err := s.photoRepo.FindByIDForOwner(id, ownerID)
	if err != nil {
		return err
	}
	if photo == nil {
		return apperr.ErrNotFound
	}
	if err := s.photoRepo.Delete(photo.ID); err != nil {
		return err
	}
	if err := s.storage.DeleteByURL(photo.PhotoURL); err != nil {
		s.logService.Log.WithField("photo", photo.ID).WithError(err).Warn("failed to delete photo blob")
	}
	return nil
}
