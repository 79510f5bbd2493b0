package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Brand       string `gorm:"size:100" json:"brand"`
	Category    string `gorm:"size:50" json:"category"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
