package models

// BoxPhoto references its Box by value only; the application maintains the
// cascade on delete, there is no database-level constraint.
type BoxPhoto struct {
	BaseModel
	BoxID    string `gorm:"type:uuid;not null;index" json:"box_id"`
	PhotoURL string `gorm:"type:text;not null" json:"photo_url"`
	OwnerID  string `gorm:"type:uuid;not null;index" json:"owner_id"`
}
