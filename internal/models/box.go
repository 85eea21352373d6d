package models

type Box struct {
	BaseModel
	Code    string     `gorm:"type:varchar(16);not null;index" json:"code"`
	Title   string     `gorm:"type:varchar(255);not null" json:"title"`
	Room    string     `gorm:"type:varchar(50);not null;index" json:"room"`
	OwnerID string     `gorm:"type:uuid;not null;index" json:"owner_id"`
	Photos  []BoxPhoto `gorm:"foreignKey:BoxID" json:"photos,omitempty"`
}
