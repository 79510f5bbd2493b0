package models

import "time"

// CleaningRecord is one logged cleaning event. CreatedAt is the authoritative
// "performed at" time and the reference for the edit window.
type CleaningRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	LocationID uint     `gorm:"not null;index" json:"location_id"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"location"`

	CleaningTypeID uint         `gorm:"not null;index" json:"cleaning_type_id"`
	CleaningType   CleaningType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cleaning_type"`

	ProductID *uint    `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	EndTime      *time.Time `json:"end_time"`
	Duration     *int       `json:"duration"`
	Observations *string    `gorm:"size:500" json:"observations"`

	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
