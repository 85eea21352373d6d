package services

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"organizer/internal/apperr"
	"organizer/internal/config"
	"organizer/internal/models"
	"organizer/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// flakyStorage fails a fixed number of saves before succeeding.
type flakyStorage struct {
	StorageService
	failures int
	attempts int
}

func (s *flakyStorage) Save(key string, r io.Reader) (string, error) {
	s.attempts++
	if s.attempts <= s.failures {
		return "", errors.New("disk hiccup")
	}
	return s.StorageService.Save(key, r)
}

func multipartPhoto(t *testing.T, fileName string) *multipart.FileHeader {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", fileName)
	assert.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func setupPhotoService(t *testing.T, storage StorageService) (PhotoService, repository.BoxRepository, repository.PhotoRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Box{}, &models.BoxPhoto{}))

	cfg := &config.Configuration{
		Storage: config.StorageConfig{Path: t.TempDir(), BaseURL: "https://files.local"},
	}
	if storage == nil {
		storage = NewStorageService(cfg)
	}
	boxRepo := repository.NewBoxRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	return NewPhotoService(photoRepo, boxRepo, storage, NewLogService(cfg)), boxRepo, photoRepo
}

func TestPhotoService_AttachPhoto(t *testing.T) {
	service, boxRepo, _ := setupPhotoService(t, nil)

	box := &models.Box{Code: "LR01", Title: "Blankets", Room: "Living Room", OwnerID: ownerID}
	assert.NoError(t, boxRepo.Create(box))

	photo, err := service.AttachPhoto(ownerID, box.ID, multipartPhoto(t, "sofa.png"))

	assert.NoError(t, err)
	assert.Equal(t, box.ID, photo.BoxID)
	assert.Contains(t, photo.PhotoURL, "https://files.local/box-photos/")
	assert.Contains(t, photo.PhotoURL, ".png")
}

func TestPhotoService_AttachPhoto_BoxNotFound(t *testing.T) {
	service, _, _ := setupPhotoService(t, nil)

	_, err := service.AttachPhoto(ownerID, "no-such-box", multipartPhoto(t, "sofa.jpg"))

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPhotoService_AttachPhoto_RetriesTransientFailure(t *testing.T) {
	cfg := &config.Configuration{
		Storage: config.StorageConfig{Path: t.TempDir(), BaseURL: "https://files.local"},
	}
	storage := &flakyStorage{StorageService: NewStorageService(cfg), failures: 2}
	service, boxRepo, _ := setupPhotoService(t, storage)

	box := &models.Box{Code: "KI01", Title: "Cookware", Room: "Kitchen", OwnerID: ownerID}
	assert.NoError(t, boxRepo.Create(box))

	photo, err := service.AttachPhoto(ownerID, box.ID, multipartPhoto(t, "pots.jpg"))

	assert.NoError(t, err)
	assert.NotNil(t, photo)
	assert.Equal(t, 3, storage.attempts)
}

func TestPhotoService_AttachPhoto_FailsAfterRetryBudget(t *testing.T) {
	cfg := &config.Configuration{
		Storage: config.StorageConfig{Path: t.TempDir(), BaseURL: "https://files.local"},
	}
	storage := &flakyStorage{StorageService: NewStorageService(cfg), failures: 5}
	service, boxRepo, photoRepo := setupPhotoService(t, storage)

	box := &models.Box{Code: "KI01", Title: "Cookware", Room: "Kitchen", OwnerID: ownerID}
	assert.NoError(t, boxRepo.Create(box))

	_, err := service.AttachPhoto(ownerID, box.ID, multipartPhoto(t, "pots.jpg"))

	assert.ErrorIs(t, err, apperr.ErrUploadFailed)
	assert.Equal(t, uploadAttempts, storage.attempts)

	// Nothing recorded for the failed upload.
	photos, err := photoRepo.FindByBoxIDForOwner(box.ID, ownerID)
	assert.NoError(t, err)
	assert.Empty(t, photos)
}

func TestPhotoService_DeletePhoto_NotFound(t *testing.T) {
	service, _, _ := setupPhotoService(t, nil)

	err := service.DeletePhoto(ownerID, "no-such-photo")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
