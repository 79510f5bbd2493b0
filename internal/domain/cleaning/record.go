package cleaning

import (
	"strings"
	"time"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480
)

// NewRecordInput is what an operator submits when logging a cleaning.
type NewRecordInput struct {
	LocationID     uint
	CleaningTypeID uint
	ProductID      *uint
	Duration       *int
	Observations   *string
}

// Validate checks the shape of the input; reference checks happen against
// the store.
func (in NewRecordInput) Validate() error {
	if in.LocationID == 0 {
		return httperr.ValidationErr("locationId", "ID de ubicación válido es requerido")
	}
	if in.CleaningTypeID == 0 {
		return httperr.ValidationErr("cleaningTypeId", "ID de tipo de limpieza válido es requerido")
	}
	if in.ProductID != nil && *in.ProductID == 0 {
		return httperr.ValidationErr("productId", "ID de producto debe ser un número válido")
	}
	if in.Duration != nil && (*in.Duration < MinDurationMinutes || *in.Duration > MaxDurationMinutes) {
		return httperr.ValidationErr("duration", "Duración debe estar entre 1 y 480 minutos (8 horas)")
	}
	if in.Observations != nil && len([]rune(strings.TrimSpace(*in.Observations))) > MaxObservationsLength {
		return httperr.ValidationErr("observations", "Observaciones no pueden exceder 500 caracteres")
	}
	return nil
}

// NewRecord builds the record owned by ownerID and performed at now.
// End time is now plus the declared duration, or now when none was given.
func NewRecord(ownerID uint, in NewRecordInput, now time.Time) *models.CleaningRecord {
	end := now
	if in.Duration != nil {
		end = now.Add(time.Duration(*in.Duration) * time.Minute)
	}

	var obs *string
	if in.Observations != nil {
		if trimmed := strings.TrimSpace(*in.Observations); trimmed != "" {
			obs = &trimmed
		}
	}

	return &models.CleaningRecord{
		UserID:         ownerID,
		LocationID:     in.LocationID,
		CleaningTypeID: in.CleaningTypeID,
		ProductID:      in.ProductID,
		EndTime:        &end,
		Duration:       in.Duration,
		Observations:   obs,
		CreatedAt:      now,
	}
}
