package repository

import (
	"organizer/internal/models"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	GenericRepository[models.BoxPhoto]
	FindByBoxIDForOwner(boxID, ownerID string) ([]models.BoxPhoto, error)
	FindByIDForOwner(id, ownerID string) (*models.BoxPhoto, error)
	FindOrphans() ([]models.BoxPhoto, error)
	FindAllURLs() ([]string, error)
}

type PhotoRepositoryImpl[T models.BoxPhoto] struct {
	GenericRepository[models.BoxPhoto]
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &PhotoRepositoryImpl[models.BoxPhoto]{
		GenericRepository: NewGenericRepository[models.BoxPhoto](db),
		db:                db,
	}
}

func (r *PhotoRepositoryImpl[T]) FindByBoxIDForOwner(boxID, ownerID string) ([]models.BoxPhoto, error) {
	var photos []models.BoxPhoto
	err := r.db.Where("box_id = ? AND owner_id = ?", boxID, ownerID).Order("created_at ASC").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepositoryImpl[T]) FindByIDForOwner(id, ownerID string) (*models.BoxPhoto, error) {
	var photo models.BoxPhoto
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&photo).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

// FindOrphans returns photo rows whose box no longer exists. The store has
// no referential integrity, so the janitor sweeps these up.
func (r *PhotoRepositoryImpl[T]) FindOrphans() ([]models.BoxPhoto, error) {
	var photos []models.BoxPhoto
	err := r.db.Where("box_id NOT IN (?)", r.db.Model(&models.Box{}).Select("id")).Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepositoryImpl[T]) FindAllURLs() ([]string, error) {
	var urls []string
	err := r.db.Model(&models.BoxPhoto{}).Pluck("photo_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}
