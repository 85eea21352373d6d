package repository

import (
	"errors"
	"organizer/internal/models"

	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindByIDForOwner(id, ownerID string) (*models.Box, error)
	FindByCodeForOwner(code, ownerID string) (*models.Box, error)
	FindByRoomForOwner(room, ownerID string) ([]models.Box, error)
	FindAllForOwner(ownerID string) ([]models.Box, error)
	BoxesSearch(
		ownerID string,
		whereClause string,
		args []interface{},
		order string,
		limit int,
		offset int,
	) ([]models.Box, error)
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) FindByIDForOwner(id, ownerID string) (*models.Box, error) {
	var box models.Box
	err := r.db.Preload("Photos").Where("id = ? AND owner_id = ?", id, ownerID).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

// FindByCodeForOwner matches codes case-insensitively.
func (r *BoxRepositoryImpl[T]) FindByCodeForOwner(code, ownerID string) (*models.Box, error) {
	var box models.Box
	err := r.db.Preload("Photos").Where("LOWER(code) = LOWER(?) AND owner_id = ?", code, ownerID).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl[T]) FindByRoomForOwner(room, ownerID string) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("room = ? AND owner_id = ?", room, ownerID).Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) FindAllForOwner(ownerID string) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Preload("Photos").Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) BoxesSearch(
	ownerID string,
	whereClause string,
	args []interface{},
	order string,
	limit int,
	offset int,
) ([]models.Box, error) {
	var boxes []models.Box
	query := r.db.Where("owner_id = ?", ownerID)
	if whereClause != "" {
		query = query.Where(whereClause, args...)
	}
	query = query.Order(order).Limit(limit).Offset(offset)
	if err := query.Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}
