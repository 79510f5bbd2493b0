package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/upb-facilities/cleaning-records/internal/dto"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/httpresp"
	"github.com/upb-facilities/cleaning-records/internal/usecase/cleaning"
)

type CatalogHandler struct {
	catalog *cleaning.Catalog
}

func NewCatalogHandler(catalog *cleaning.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Locations(c *gin.Context) {
	locs, err := h.catalog.Locations(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.LocationView, 0, len(locs))
	for i := range locs {
		out = append(out, dto.NewLocationView(&locs[i]))
	}
	httpresp.List(c, "locations", out)
}

func (h *CatalogHandler) CleaningTypes(c *gin.Context) {
	types, err := h.catalog.CleaningTypes(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.CleaningTypeView, 0, len(types))
	for i := range types {
		out = append(out, dto.NewCleaningTypeView(&types[i]))
	}
	httpresp.List(c, "cleaningTypes", out)
}

func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.ProductView, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductView(&products[i]))
	}
	httpresp.List(c, "products", out)
}
