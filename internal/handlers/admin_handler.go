package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/account"
	"github.com/upb-facilities/cleaning-records/internal/dto"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/httpresp"
	"github.com/upb-facilities/cleaning-records/internal/middleware"
	"github.com/upb-facilities/cleaning-records/internal/usecase/account"
	"github.com/upb-facilities/cleaning-records/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	dashboard *report.Dashboard
	records   *report.ListRecords
	export    *report.ExportRecords
	archive   *report.ArchiveExport
	users     *account.ListUsers
	setActive *account.SetUserActive

	loc *time.Location
	now func() time.Time
	log logrus.FieldLogger
}

type AdminDeps struct {
	Dashboard *report.Dashboard
	Records   *report.ListRecords
	Export    *report.ExportRecords
	Archive   *report.ArchiveExport
	Users     *account.ListUsers
	SetActive *account.SetUserActive
}

func NewAdminHandler(
	deps AdminDeps,
	loc *time.Location,
	now func() time.Time,
	log logrus.FieldLogger,
) *AdminHandler {
	return &AdminHandler{
		dashboard: deps.Dashboard,
		records:   deps.Records,
		export:    deps.Export,
		archive:   deps.Archive,
		users:     deps.Users,
		setActive: deps.SetActive,
		loc:       loc,
		now:       now,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetUserStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	snap, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewDashboardView(snap))
}

// ======================================================
// RECORDS
// ======================================================

func (h *AdminHandler) Records(c *gin.Context) {
	f, echo, err := parseRecordFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	page, err := parsePage(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	recs, info, err := h.records.Execute(c.Request.Context(), f, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := httpresp.PageResponse("records", dto.NewRecordViews(recs), info)
	body["filters"] = echo
	httpresp.OK(c, body)
}

// Export answers JSON by default and a CSV attachment with ?format=csv.
func (h *AdminHandler) Export(c *gin.Context) {
	f, echo, err := parseRecordFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "json"))
	if format != "json" && format != "csv" {
		httperr.Respond(c, httperr.ValidationErr("format", "Formato debe ser json o csv"))
		return
	}

	rows, err := h.export.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	now := h.now()

	if format == "csv" {
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, rows); err != nil {
			httperr.Respond(c, fmt.Errorf("render csv: %w", err))
			return
		}
		name := fmt.Sprintf("registros-limpieza-%s.csv", now.In(h.loc).Format("2006-01-02"))
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	httpresp.OK(c, gin.H{
		"records":    rows,
		"total":      len(rows),
		"exportDate": now.UTC(),
		"filters":    echo,
	})
}

// ArchiveExport renders the CSV export and stores it in object storage.
func (h *AdminHandler) ArchiveExport(c *gin.Context) {
	f, echo, err := parseRecordFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.archive.Execute(c.Request.Context(), middleware.CurrentUserID(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Exportación archivada exitosamente", gin.H{
		"key":     res.Key,
		"total":   res.Rows,
		"filters": echo,
	})
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) Users(c *gin.Context) {
	var f domain.UserFilter
	f.Role = strings.ToUpper(strings.TrimSpace(c.Query("role")))

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.Respond(c, httperr.ValidationErr("active", "Activo debe ser true o false"))
			return
		}
		f.Active = &active
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	users, info, err := h.users.Execute(c.Request.Context(), f, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.PageResponse("users", dto.NewUserWithCountViews(users), info))
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ValidationErr("active", "Estado activo debe ser un booleano"))
		return
	}

	user, err := h.setActive.Execute(c.Request.Context(), middleware.CurrentUserID(c), id, *req.Active)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	msg := "Usuario desactivado exitosamente"
	if user.Active {
		msg = "Usuario activado exitosamente"
	}

	h.log.WithFields(logrus.Fields{
		"admin_id": middleware.CurrentUserID(c),
		"user_id":  user.ID,
		"active":   user.Active,
	}).Info("user status changed")

	httpresp.Message(c, msg, gin.H{"user": dto.NewUserView(user)})
}
