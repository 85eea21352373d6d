package services

import (
	"errors"
	"fmt"

	"organizer/internal/apperr"
	"organizer/internal/models"
	"organizer/internal/repository"
)

type BoxService interface {
	CreateBox(ownerID, id, code, title, room string) (*models.Box, error)
	GetBoxByID(ownerID, id string) (*models.Box, error)
	UpdateBox(ownerID, id, code, title, room string) (*models.Box, error)
	DeleteBox(ownerID, id string) error
	GetBoxes(ownerID string) ([]models.Box, error)
	SearchBoxes(ownerID, filter, order string, limit, offset int) ([]models.Box, error)
}

type boxServiceImpl struct {
	boxRepo      repository.BoxRepository
	photoService PhotoService
	logService   LogService
}

func NewBoxService(boxRepo repository.BoxRepository, photoService PhotoService, logService LogService) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, photoService: photoService, logService: logService}
}

func (s *boxServiceImpl) CreateBox(ownerID, id, code, title, room string) (*models.Box, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if code == "" {
		return nil, errors.New("code is required")
	}
	if !models.IsValidRoom(room) {
		return nil, fmt.Errorf("unknown room %q", room)
	}
	box := &models.Box{
		BaseModel: models.BaseModel{ID: id},
		Code:      code,
		Title:     title,
		Room:      room,
		OwnerID:   ownerID,
	}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(ownerID, id string) (*models.Box, error) {
	box, err := s.boxRepo.FindByIDForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, apperr.ErrNotFound
	}
	box.Room = models.NormalizeRoom(box.Room)
	return box, nil
}

func (s *boxServiceImpl) UpdateBox(ownerID, id, code, title, room string) (*models.Box, error) {
	box, err := s.GetBoxByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errors.New("title is required")
	}
	if !models.IsValidRoom(room) {
		return nil, fmt.Errorf("unknown room %q", room)
	}
	box.Code = code
	box.Title = title
	box.Room = room
	if err := s.boxRepo.Update(box); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteBox removes the photo rows first, then the box. The store has no
// multi-row transactions, so the cascade is best effort: a photo failure is
// logged and accumulated but does not stop the remaining deletes. Only a
// failure deleting the box row itself fails the operation.
func (s *boxServiceImpl) DeleteBox(ownerID, id string) error {
	box, err := s.GetBoxByID(ownerID, id)
	if err != nil {
		return err
	}
	var photoErrs error
	photos, err := s.photoService.ListPhotos(ownerID, box.ID)
	if err != nil {
		photoErrs = errors.Join(photoErrs, err)
	}
	for _, photo := range photos {
		if err := s.photoService.DeletePhoto(ownerID, photo.ID); err != nil {
			s.logService.Log.WithField("photo", photo.ID).WithError(err).Warn("failed to delete photo during cascade")
			photoErrs = errors.Join(photoErrs, err)
		}
	}
	if err := s.boxRepo.Delete(box.ID); err != nil {
		return errors.Join(err, photoErrs)
	}
	return nil
}

func (s *boxServiceImpl) GetBoxes(ownerID string) ([]models.Box, error) {
	boxes, err := s.boxRepo.FindAllForOwner(ownerID)
	if err != nil {
		return nil, err
	}
	for i := range boxes {
		boxes[i].Room = models.NormalizeRoom(boxes[i].Room)
	}
	return boxes, nil
}

func (s *boxServiceImpl) SearchBoxes(ownerID, filter, order string, limit, offset int) ([]models.Box, error) {
	whereClause, args := ParseFilter(filter)
	if order == "" {
		order = "created_at DESC"
	}
	if limit <= 0 {
		limit = 100
	}
	return s.boxRepo.BoxesSearch(ownerID, whereClause, args, order, limit, offset)
}
