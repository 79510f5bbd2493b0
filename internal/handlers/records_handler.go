package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/dto"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/httpresp"
	"github.com/upb-facilities/cleaning-records/internal/middleware"
	"github.com/upb-facilities/cleaning-records/internal/usecase/cleaning"
)

// ======================================================
// HANDLER
// ======================================================

type RecordsHandler struct {
	create *cleaning.CreateRecord
	update *cleaning.UpdateRecord
	remove *cleaning.DeleteRecord
	mine   *cleaning.ListMyRecords
}

func NewRecordsHandler(
	create *cleaning.CreateRecord,
	update *cleaning.UpdateRecord,
	remove *cleaning.DeleteRecord,
	mine *cleaning.ListMyRecords,
) *RecordsHandler {
	return &RecordsHandler{
		create: create,
		update: update,
		remove: remove,
		mine:   mine,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRecordRequest struct {
	LocationID     uint    `json:"locationId" binding:"required,min=1"`
	CleaningTypeID uint    `json:"cleaningTypeId" binding:"required,min=1"`
	ProductID      *uint   `json:"productId" binding:"omitempty,min=1"`
	Duration       *int    `json:"duration" binding:"omitempty,min=1,max=480"`
	Observations   *string `json:"observations" binding:"omitempty,max=500"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RecordsHandler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	rec, err := h.create.Execute(c.Request.Context(), middleware.CurrentUserID(c), domain.NewRecordInput{
		LocationID:     req.LocationID,
		CleaningTypeID: req.CleaningTypeID,
		ProductID:      req.ProductID,
		Duration:       req.Duration,
		Observations:   req.Observations,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Registro de limpieza creado exitosamente", gin.H{
		"record": dto.NewRecordView(rec),
	})
}

// ======================================================
// MY RECORDS
// ======================================================

func (h *RecordsHandler) Mine(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, info, err := h.mine.Execute(c.Request.Context(), middleware.CurrentUserID(c), page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.RecordView, 0, len(items))
	for i := range items {
		v := dto.NewRecordView(&items[i].Record)
		canEdit := items[i].CanEdit
		until := domain.EditableUntil(&items[i].Record)
		v.CanEdit = &canEdit
		v.EditableUntil = &until
		out = append(out, v)
	}

	httpresp.OK(c, httpresp.PageResponse("records", out, info))
}

// ======================================================
// UPDATE
// ======================================================

// Update reads the body as raw fields so that anything outside the editable
// allow-list is dropped before it reaches the use case.
func (h *RecordsHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		httperr.Respond(c, httperr.ValidationErr("", "Datos de entrada inválidos"))
		return
	}

	patch, err := domain.ParsePatch(raw)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	rec, err := h.update.Execute(c.Request.Context(), middleware.CurrentUserID(c), id, patch)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Registro actualizado exitosamente", gin.H{
		"record": dto.NewRecordView(rec),
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *RecordsHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Registro eliminado exitosamente", nil)
}
