package report

import (
	"strings"
	"time"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

const MaxBuildingFilterLength = 50

// RecordFilter narrows record listings and exports. Zero fields match all;
// set fields are ANDed.
type RecordFilter struct {
	Building       string
	UserID         *uint
	CleaningTypeID *uint

	// StartDate and EndDate are calendar dates in the facility zone.
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate defends the filter bounds when the HTTP layer is bypassed.
func (f RecordFilter) Validate() error {
	if len([]rune(f.Building)) > MaxBuildingFilterLength {
		return httperr.ValidationErr("building", "Edificio debe tener entre 1 y 50 caracteres")
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return httperr.ValidationErr("endDate", "La fecha de fin no puede ser anterior a la fecha de inicio")
	}
	return nil
}

// BuildingPattern is the lower-cased LIKE pattern for the building filter.
func (f RecordFilter) BuildingPattern() string {
	b := strings.ToLower(strings.TrimSpace(f.Building))
	if b == "" {
		return ""
	}
	b = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(b)
	return "%" + b + "%"
}

// CreatedRange turns the calendar dates into a creation-time range:
// from local midnight of StartDate through 23:59:59.999 of EndDate.
func (f RecordFilter) CreatedRange() Range {
	var r Range
	if f.StartDate != nil {
		from := timezone.StartOfDay(*f.StartDate)
		r.From = &from
	}
	if f.EndDate != nil {
		to := timezone.EndOfDay(*f.EndDate)
		r.To = &to
		r.ToInclusive = true
	}
	return r
}
