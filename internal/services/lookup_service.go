package services

import (
	"organizer/internal/apperr"
	"organizer/internal/models"
	"organizer/internal/repository"
)

// LookupService resolves a scanned payload to the owner's box. Read-only.
type LookupService interface {
	Resolve(ownerID, payload string) (*models.Box, error)
	ResolveKey(ownerID string, key *LookupKey) (*models.Box, error)
}

type lookupServiceImpl struct {
	boxRepo   repository.BoxRepository
	qrService QRService
}

func NewLookupService(boxRepo repository.BoxRepository, qrService QRService) LookupService {
	return &lookupServiceImpl{boxRepo: boxRepo, qrService: qrService}
}

func (s *lookupServiceImpl) Resolve(ownerID, payload string) (*models.Box, error) {
	key, err := s.qrService.DecodePayload(payload)
	if err != nil {
		return nil, err
	}
	return s.ResolveKey(ownerID, key)
}

func (s *lookupServiceImpl) ResolveKey(ownerID string, key *LookupKey) (*models.Box, error) {
	var box *models.Box
	var err error
	switch key.Kind {
	case KeyByCode:
		box, err = s.boxRepo.FindByCodeForOwner(key.Value, ownerID)
	case KeyByID:
		box, err = s.boxRepo.FindByIDForOwner(key.Value, ownerID)
	default:
		return nil, apperr.ErrInvalidFormat
	}
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, apperr.ErrNotFound
	}
	return box, nil
}
