package cleaning

import (
	"context"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// Catalog serves the active master data operators pick from.
type Catalog struct {
	repo domain.Repository
}

func NewCatalog(repo domain.Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (uc *Catalog) Locations(ctx context.Context) ([]models.Location, error) {
	return uc.repo.ListActiveLocations(ctx)
}

func (uc *Catalog) CleaningTypes(ctx context.Context) ([]models.CleaningType, error) {
	return uc.repo.ListActiveCleaningTypes(ctx)
}

func (uc *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	return uc.repo.ListActiveProducts(ctx)
}
