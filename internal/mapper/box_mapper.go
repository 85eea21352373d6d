package mapper

import (
	"organizer/internal/dto"
	"organizer/internal/models"
)

func ToBoxGetDTO(box *models.Box, qrPayload string) *dto.BoxGetDTO {
	photos := make([]dto.PhotoGetDTO, 0, len(box.Photos))
	for _, photo := range box.Photos {
		photos = append(photos, dto.PhotoGetDTO{
			ID:        photo.ID,
			PhotoURL:  photo.PhotoURL,
			CreatedAt: photo.CreatedAt,
		})
	}
	return &dto.BoxGetDTO{
		ID:        box.ID,
		Code:      box.Code,
		Title:     box.Title,
		Room:      box.Room,
		RoomColor: models.RoomColor(box.Room),
		QRPayload: qrPayload,
		Photos:    photos,
		CreatedAt: box.CreatedAt,
		UpdatedAt: box.UpdatedAt,
	}
}
