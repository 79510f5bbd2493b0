package dto

import (
	"time"

	"github.com/upb-facilities/cleaning-records/internal/models"
)

type UserRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LocationView struct {
	ID          uint   `json:"id"`
	Building    string `json:"building"`
	Floor       string `json:"floor,omitempty"`
	Room        string `json:"room"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type CleaningTypeView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// RecordView is a cleaning record with whatever relations were loaded.
type RecordView struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"userId"`
	LocationID     uint       `json:"locationId"`
	CleaningTypeID uint       `json:"cleaningTypeId"`
	ProductID      *uint      `json:"productId"`
	EndTime        *time.Time `json:"endTime"`
	Duration       *int       `json:"duration"`
	Observations   *string    `json:"observations"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`

	User         *UserRef          `json:"user,omitempty"`
	Location     *LocationView     `json:"location,omitempty"`
	CleaningType *CleaningTypeView `json:"cleaningType,omitempty"`
	Product      *ProductView      `json:"product"`

	CanEdit       *bool      `json:"canEdit,omitempty"`
	EditableUntil *time.Time `json:"editableUntil,omitempty"`
}

func NewLocationView(l *models.Location) LocationView {
	return LocationView{
		ID:          l.ID,
		Building:    l.Building,
		Floor:       l.Floor,
		Room:        l.Room,
		Type:        l.Type,
		Description: l.Description,
	}
}

func NewCleaningTypeView(ct *models.CleaningType) CleaningTypeView {
	return CleaningTypeView{ID: ct.ID, Name: ct.Name, Description: ct.Description}
}

func NewProductView(p *models.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Description: p.Description,
	}
}

// NewRecordView leaves out relations that were not preloaded.
func NewRecordView(rec *models.CleaningRecord) RecordView {
	v := RecordView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		LocationID:     rec.LocationID,
		CleaningTypeID: rec.CleaningTypeID,
		ProductID:      rec.ProductID,
		EndTime:        rec.EndTime,
		Duration:       rec.Duration,
		Observations:   rec.Observations,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}

	if rec.User.ID != 0 {
		v.User = &UserRef{ID: rec.User.ID, Name: rec.User.Name, Email: rec.User.Email}
	}
	if rec.Location.ID != 0 {
		loc := NewLocationView(&rec.Location)
		v.Location = &loc
	}
	if rec.CleaningType.ID != 0 {
		ct := NewCleaningTypeView(&rec.CleaningType)
		v.CleaningType = &ct
	}
	if rec.Product != nil {
		p := NewProductView(rec.Product)
		v.Product = &p
	}

	return v
}

func NewRecordViews(recs []models.CleaningRecord) []RecordView {
	out := make([]RecordView, 0, len(recs))
	for i := range recs {
		out = append(out, NewRecordView(&recs[i]))
	}
	return out
}
