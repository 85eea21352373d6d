package dto

import "time"

type BoxGetDTO struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Title     string        `json:"title"`
	Room      string        `json:"room"`
	RoomColor string        `json:"room_color,omitempty"`
	QRPayload string        `json:"qr_payload"`
	Photos    []PhotoGetDTO `json:"photos"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type PhotoGetDTO struct {
	ID        string    `json:"id"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}
