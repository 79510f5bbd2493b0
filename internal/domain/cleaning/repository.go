package cleaning

import (
	"context"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// Repository is the persistence port of the record lifecycle. Lookups of a
// missing row return gorm.ErrRecordNotFound.
type Repository interface {
	// -------- Master data --------
	GetLocation(ctx context.Context, id uint) (*models.Location, error)
	GetCleaningType(ctx context.Context, id uint) (*models.CleaningType, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)

	ListActiveLocations(ctx context.Context) ([]models.Location, error)
	ListActiveCleaningTypes(ctx context.Context) ([]models.CleaningType, error)
	ListActiveProducts(ctx context.Context) ([]models.Product, error)

	// -------- Records --------
	CreateRecord(ctx context.Context, rec *models.CleaningRecord) error

	// GetRecord loads the record joined with user, location, cleaning type
	// and product.
	GetRecord(ctx context.Context, id uint) (*models.CleaningRecord, error)

	// UpdateRecordColumns writes only the given columns of one record.
	UpdateRecordColumns(ctx context.Context, id uint, cols map[string]any) error

	// DeleteRecord removes the record; false means nothing was deleted.
	DeleteRecord(ctx context.Context, id uint) (bool, error)

	ListRecordsByUser(ctx context.Context, userID uint, page paging.Page) ([]models.CleaningRecord, int64, error)
}
