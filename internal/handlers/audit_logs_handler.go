package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/httpresp"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: strings.TrimSpace(c.Query("action")),
		Entity: strings.TrimSpace(c.Query("entity")),
	}

	// --------------------------------------------------
	// Date bounds (facility calendar days, inclusive)
	// --------------------------------------------------

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.Respond(c, httperr.ValidationErr("from", "Fecha debe estar en formato YYYY-MM-DD"))
			return
		}
		f.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.Respond(c, httperr.ValidationErr("to", "Fecha debe estar en formato YYYY-MM-DD"))
			return
		}
		end := timezone.EndOfDay(to)
		f.To = &end
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	logs, total, err := h.logs.List(c.Request.Context(), f, page)
	if err != nil {
		httperr.Respond(c, fmt.Errorf("list audit logs: %w", err))
		return
	}

	httpresp.OK(c, httpresp.PageResponse("logs", logs, page.Info(total)))
}
