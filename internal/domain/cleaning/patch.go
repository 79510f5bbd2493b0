package cleaning

import (
	"encoding/json"
	"strings"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
)

// MaxObservationsLength bounds the free-text observations of a record.
const MaxObservationsLength = 500

// Patch keys accepted by the update path. Anything else in an incoming
// patch is ignored.
const (
	PatchKeyProductID    = "productId"
	PatchKeyObservations = "observations"
)

var EditableFields = []string{PatchKeyProductID, PatchKeyObservations}

// Patch is the allow-listed subset of a record update. A field whose Set flag
// is false was not present in the request; Set with a nil value clears it.
type Patch struct {
	ProductSet bool
	ProductID  *uint

	ObservationsSet bool
	Observations    *string
}

func (p Patch) Empty() bool {
	return !p.ProductSet && !p.ObservationsSet
}

// ParsePatch reads only EditableFields out of raw and drops every other key.
func ParsePatch(raw map[string]json.RawMessage) (Patch, error) {
	var p Patch

	for _, key := range EditableFields {
		val, ok := raw[key]
		if !ok {
			continue
		}

		switch key {
		case PatchKeyProductID:
			p.ProductSet = true
			if isNull(val) {
				continue
			}
			var id uint
			if err := json.Unmarshal(val, &id); err != nil || id == 0 {
				return Patch{}, httperr.ValidationErr(key, "ID de producto debe ser un número válido")
			}
			p.ProductID = &id

		case PatchKeyObservations:
			p.ObservationsSet = true
			if isNull(val) {
				continue
			}
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				return Patch{}, httperr.ValidationErr(key, "Observaciones deben ser texto")
			}
			p.Observations = &s
		}
	}

	return p.Normalize()
}

// Normalize trims observations and enforces the length bound. An empty
// observation after trimming clears the field.
func (p Patch) Normalize() (Patch, error) {
	if p.ObservationsSet && p.Observations != nil {
		trimmed := strings.TrimSpace(*p.Observations)
		if len([]rune(trimmed)) > MaxObservationsLength {
			return Patch{}, httperr.ValidationErr(PatchKeyObservations, "Observaciones no pueden exceder 500 caracteres")
		}
		if trimmed == "" {
			p.Observations = nil
		} else {
			p.Observations = &trimmed
		}
	}
	if p.ProductSet && p.ProductID != nil && *p.ProductID == 0 {
		return Patch{}, httperr.ValidationErr(PatchKeyProductID, "ID de producto debe ser un número válido")
	}
	return p, nil
}

// Columns maps the patch onto database columns. Only allow-listed columns
// can ever appear here.
func (p Patch) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if p.ProductSet {
		cols["product_id"] = p.ProductID
	}
	if p.ObservationsSet {
		cols["observations"] = p.Observations
	}
	return cols
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
