package report

import (
	"strconv"
	"time"

	"github.com/upb-facilities/cleaning-records/internal/models"
)

const (
	ExportDateLayout = "02/01/2006"

	PlaceholderMissing = "N/A"
	PlaceholderProduct = "No especificado"
)

// ExportColumns is the header order of exported rows.
var ExportColumns = []string{
	"id",
	"fecha",
	"hora",
	"operario",
	"email_operario",
	"edificio",
	"piso",
	"ubicacion",
	"tipo_ubicacion",
	"tipo_limpieza",
	"producto",
	"duracion_minutos",
	"observaciones",
}

// ExportRow is a flat, display-ready record.
type ExportRow struct {
	ID              uint   `json:"id"`
	Fecha           string `json:"fecha"`
	Hora            string `json:"hora"`
	Operario        string `json:"operario"`
	EmailOperario   string `json:"email_operario"`
	Edificio        string `json:"edificio"`
	Piso            string `json:"piso"`
	Ubicacion       string `json:"ubicacion"`
	TipoUbicacion   string `json:"tipo_ubicacion"`
	TipoLimpieza    string `json:"tipo_limpieza"`
	Producto        string `json:"producto"`
	DuracionMinutos int    `json:"duracion_minutos"`
	Observaciones   string `json:"observaciones"`
}

// NewExportRow flattens rec, rendering its creation time in loc.
func NewExportRow(rec *models.CleaningRecord, loc *time.Location) ExportRow {
	created := rec.CreatedAt.In(loc)

	row := ExportRow{
		ID:            rec.ID,
		Fecha:         created.Format(ExportDateLayout),
		Hora:          FormatClock(created),
		Operario:      orMissing(rec.User.Name),
		EmailOperario: orMissing(rec.User.Email),
		Edificio:      orMissing(rec.Location.Building),
		Piso:          orMissing(rec.Location.Floor),
		Ubicacion:     orMissing(rec.Location.Room),
		TipoUbicacion: orMissing(rec.Location.Type),
		TipoLimpieza:  orMissing(rec.CleaningType.Name),
		Producto:      PlaceholderProduct,
	}

	if rec.Product != nil && rec.Product.Name != "" {
		row.Producto = rec.Product.Name
	}
	if rec.Duration != nil {
		row.DuracionMinutos = *rec.Duration
	}
	if rec.Observations != nil {
		row.Observaciones = *rec.Observations
	}

	return row
}

// FormatClock renders t as a 12-hour clock with the Colombian meridiem
// suffix, e.g. "02:30:00 p. m.".
func FormatClock(t time.Time) string {
	suffix := " a. m."
	if t.Hour() >= 12 {
		suffix = " p. m."
	}
	return t.Format("03:04:05") + suffix
}

// Values returns the row in ExportColumns order.
func (r ExportRow) Values() []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.Fecha,
		r.Hora,
		r.Operario,
		r.EmailOperario,
		r.Edificio,
		r.Piso,
		r.Ubicacion,
		r.TipoUbicacion,
		r.TipoLimpieza,
		r.Producto,
		strconv.Itoa(r.DuracionMinutos),
		r.Observaciones,
	}
}

func orMissing(s string) string {
	if s == "" {
		return PlaceholderMissing
	}
	return s
}
