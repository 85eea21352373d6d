package repository

import (
	"errors"
	"organizer/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GenericRepository[models.User]
	FindByEmail(email string) (*models.User, error)
}

type UserRepositoryImpl[T models.User] struct {
	GenericRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl[models.User]{
		GenericRepository: NewGenericRepository[models.User](db),
		db:                db,
	}
}

func (r *UserRepositoryImpl[T]) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
