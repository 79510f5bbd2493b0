package models

import "time"

// Location types used by the facility.
const (
	LocationBathroom   = "BATHROOM"
	LocationClassroom  = "CLASSROOM"
	LocationOffice     = "OFFICE"
	LocationHallway    = "HALLWAY"
	LocationCommonArea = "COMMON_AREA"
)

type Location struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Building    string `gorm:"size:100;not null;uniqueIndex:idx_location_building_floor_room,priority:1" json:"building"`
	Floor       string `gorm:"size:50;not null;default:'';uniqueIndex:idx_location_building_floor_room,priority:2" json:"floor"`
	Room        string `gorm:"size:100;not null;uniqueIndex:idx_location_building_floor_room,priority:3" json:"room"`
	Type        string `gorm:"size:20;not null" json:"type"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"not null;index" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
