package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"organizer/internal/apperr"
	"organizer/internal/config"
	"organizer/internal/models"
	"organizer/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type boxServiceFixture struct {
	db           *gorm.DB
	boxRepo      repository.BoxRepository
	photoRepo    repository.PhotoRepository
	storage      StorageService
	boxService   BoxService
	photoService PhotoService
	cfg          *config.Configuration
}

func setupBoxServiceFixture(t *testing.T) *boxServiceFixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Box{}, &models.BoxPhoto{}))

	cfg := &config.Configuration{
		Storage: config.StorageConfig{
			Path:    t.TempDir(),
			BaseURL: "https://files.local",
		},
	}
	logService := NewLogService(cfg)
	boxRepo := repository.NewBoxRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	storage := NewStorageService(cfg)
	photoService := NewPhotoService(photoRepo, boxRepo, storage, logService)
	boxService := NewBoxService(boxRepo, photoService, logService)

	return &boxServiceFixture{
		db:           db,
		boxRepo:      boxRepo,
		photoRepo:    photoRepo,
		storage:      storage,
		boxService:   boxService,
		photoService: photoService,
		cfg:          cfg,
	}
}

func TestBoxService_CreateBox(t *testing.T) {
	f := setupBoxServiceFixture(t)

	box, err := f.boxService.CreateBox(ownerID, "", "LR01", "Blankets", "Living Room")

	assert.NoError(t, err)
	assert.NotEmpty(t, box.ID)
	assert.Equal(t, "LR01", box.Code)
}

func TestBoxService_CreateBox_KeepsClientID(t *testing.T) {
	f := setupBoxServiceFixture(t)

	box, err := f.boxService.CreateBox(ownerID, "client-chosen-id", "LR01", "Blankets", "Living Room")

	assert.NoError(t, err)
	assert.Equal(t, "client-chosen-id", box.ID)
}

func TestBoxService_CreateBox_RejectsUnknownRoom(t *testing.T) {
	f := setupBoxServiceFixture(t)

	box, err := f.boxService.CreateBox(ownerID, "", "XX01", "Mystery", "Ballroom")

	assert.Error(t, err)
	assert.Nil(t, box)
}

func TestBoxService_CreateBox_RequiresTitle(t *testing.T) {
	f := setupBoxServiceFixture(t)

	_, err := f.boxService.CreateBox(ownerID, "", "LR01", "", "Living Room")

	assert.Error(t, err)
}

func TestBoxService_GetBoxByID_NotFoundForOtherOwner(t *testing.T) {
	f := setupBoxServiceFixture(t)

	box, err := f.boxService.CreateBox(ownerID, "", "KI01", "Cookware", "Kitchen")
	assert.NoError(t, err)

	_, err = f.boxService.GetBoxByID("22222222-2222-2222-2222-222222222222", box.ID)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBoxService_UpdateBox(t *testing.T) {
	f := setupBoxServiceFixture(t)

	box, err := f.boxService.CreateBox(ownerID, "", "KI01", "Cookware", "Kitchen")
	assert.NoError(t, err)

	updated, err := f.boxService.UpdateBox(ownerID, box.ID, "KI02", "Pots and pans", "Kitchen")

	assert.NoError(t, err)
	assert.Equal(t, "KI02", updated.Code)
	assert.Equal(t, "Pots and pans", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(box.UpdatedAt))
}

func TestBoxService_DeleteBox_CascadesPhotos(t *testing.T) {
	f := setupBoxServiceFixture(t)

	box, err := f.boxService.CreateBox(ownerID, "", "OF01", "Cables", "Office")
	assert.NoError(t, err)

	// Attach rows with backing blobs the way the upload path stores them.
	for _, name := range []string{"a.jpg", "b.jpg"} {
		key := "box-photos/" + name
		url, err := f.storage.Save(key, strings.NewReader("jpeg-bytes"))
		assert.NoError(t, err)
		assert.NoError(t, f.photoRepo.Create(&models.BoxPhoto{BoxID: box.ID, PhotoURL: url, OwnerID: ownerID}))
	}

	assert.NoError(t, f.boxService.DeleteBox(ownerID, box.ID))

	photos, err := f.photoRepo.FindByBoxIDForOwner(box.ID, ownerID)
	assert.NoError(t, err)
	assert.Empty(t, photos)

	_, err = f.boxService.GetBoxByID(ownerID, box.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = os.Stat(filepath.Join(f.cfg.Storage.Path, "box-photos", "a.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestBoxService_DeleteBox_NotFound(t *testing.T) {
	f := setupBoxServiceFixture(t)

	err := f.boxService.DeleteBox(ownerID, "no-such-box")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBoxService_SearchBoxes_Filter(t *testing.T) {
	f := setupBoxServiceFixture(t)

	_, err := f.boxService.CreateBox(ownerID, "", "LR01", "Winter blankets", "Living Room")
	assert.NoError(t, err)
	_, err = f.boxService.CreateBox(ownerID, "", "KI01", "Cookware", "Kitchen")
	assert.NoError(t, err)

	boxes, err := f.boxService.SearchBoxes(ownerID, "room eq 'Kitchen'", "", 0, 0)

	assert.NoError(t, err)
	assert.Len(t, boxes, 1)
	assert.Equal(t, "KI01", boxes[0].Code)
}
