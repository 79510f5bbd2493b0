package cleaning

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// --------------------------------------------------
// Reference checks shared by create and update
// --------------------------------------------------

func requireActiveLocation(ctx context.Context, repo domain.Repository, id uint) (*models.Location, error) {
	loc, err := repo.GetLocation(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.InvalidReferenceErr("locationId", "location_not_found", "Ubicación no encontrada")
	}
	if err != nil {
		return nil, fmt.Errorf("get location %d: %w", id, err)
	}
	if !loc.Active {
		return nil, httperr.InvalidReferenceErr("locationId", "location_inactive", "Ubicación inactiva")
	}
	return loc, nil
}

func requireActiveCleaningType(ctx context.Context, repo domain.Repository, id uint) (*models.CleaningType, error) {
	ct, err := repo.GetCleaningType(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.InvalidReferenceErr("cleaningTypeId", "cleaning_type_not_found", "Tipo de limpieza no encontrado")
	}
	if err != nil {
		return nil, fmt.Errorf("get cleaning type %d: %w", id, err)
	}
	if !ct.Active {
		return nil, httperr.InvalidReferenceErr("cleaningTypeId", "cleaning_type_inactive", "Tipo de limpieza inactivo")
	}
	return ct, nil
}

func requireActiveProduct(ctx context.Context, repo domain.Repository, id uint) (*models.Product, error) {
	p, err := repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.InvalidReferenceErr("productId", "product_not_found", "Producto no encontrado")
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if !p.Active {
		return nil, httperr.InvalidReferenceErr("productId", "product_inactive", "Producto inactivo")
	}
	return p, nil
}

func recordNotFound() error {
	return httperr.NotFoundErr("record_not_found", "Registro no encontrado")
}

// loadRecord maps a missing row to the record_not_found business error.
func loadRecord(ctx context.Context, repo domain.Repository, id uint) (*models.CleaningRecord, error) {
	rec, err := repo.GetRecord(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recordNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, nil
}
