package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/domain/report"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

// --------------------------------------------------
// Path and query parsing
// --------------------------------------------------

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.ValidationErr(param, "ID debe ser un número válido")
	}
	return uint(id), nil
}

func parsePage(c *gin.Context) (paging.Page, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return paging.Page{}, httperr.ValidationErr("page", "Página debe ser un número mayor a 0")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(paging.DefaultLimit)))
	if err != nil || limit < 1 || limit > paging.MaxLimit {
		return paging.Page{}, httperr.ValidationErr("limit", "Límite debe ser un número entre 1 y 100")
	}

	return paging.New(page, limit), nil
}

func optionalID(c *gin.Context, key string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, httperr.ValidationErr(key, "ID debe ser un número válido")
	}
	v := uint(id)
	return &v, nil
}

func optionalDate(c *gin.Context, key string, loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := timezone.ParseDate(raw, loc)
	if err != nil {
		return nil, httperr.ValidationErr(key, "Fecha debe estar en formato YYYY-MM-DD")
	}
	return &d, nil
}

// parseRecordFilter reads building, startDate, endDate, userId and
// cleaningTypeId. It also returns the raw values to echo back.
func parseRecordFilter(c *gin.Context, loc *time.Location) (report.RecordFilter, gin.H, error) {
	var f report.RecordFilter
	var err error

	f.Building = strings.TrimSpace(c.Query("building"))
	if _, set := c.GetQuery("building"); set && f.Building == "" {
		return f, nil, httperr.ValidationErr("building", "Edificio debe tener entre 1 y 50 caracteres")
	}
	if f.UserID, err = optionalID(c, "userId"); err != nil {
		return f, nil, err
	}
	if f.CleaningTypeID, err = optionalID(c, "cleaningTypeId"); err != nil {
		return f, nil, err
	}
	if f.StartDate, err = optionalDate(c, "startDate", loc); err != nil {
		return f, nil, err
	}
	if f.EndDate, err = optionalDate(c, "endDate", loc); err != nil {
		return f, nil, err
	}
	if err := f.Validate(); err != nil {
		return f, nil, err
	}

	echo := gin.H{}
	for _, key := range []string{"building", "startDate", "endDate", "userId", "cleaningTypeId"} {
		if v := c.Query(key); v != "" {
			echo[key] = v
		}
	}
	return f, echo, nil
}

// --------------------------------------------------
// Binding errors
// --------------------------------------------------

// bindError turns a gin binding failure into a validation error naming the
// first offending field.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return httperr.ValidationErr(lowerFirst(fe.Field()), "Valor inválido para "+lowerFirst(fe.Field()))
	}
	return httperr.ValidationErr("", "Datos de entrada inválidos")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
