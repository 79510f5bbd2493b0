package report

import (
	"context"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// Dimension is a group-by axis of the top-N rankings.
type Dimension string

const (
	ByOperator     Dimension = "user_id"
	ByLocation     Dimension = "location_id"
	ByCleaningType Dimension = "cleaning_type_id"
)

// RankEntry is one grouped count. Ties are ordered by ID ascending.
type RankEntry struct {
	ID    uint
	Count int64
}

// Repository is the read side used by the admin dashboard and listings.
type Repository interface {
	CountRecords(ctx context.Context, r Range) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)
	CountActiveLocations(ctx context.Context) (int64, error)

	RecentRecords(ctx context.Context, limit int) ([]models.CleaningRecord, error)
	TopBy(ctx context.Context, dim Dimension, r Range, limit int) ([]RankEntry, error)

	// Enrichment lookups. Missing rows return gorm.ErrRecordNotFound.
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetLocation(ctx context.Context, id uint) (*models.Location, error)
	GetCleaningType(ctx context.Context, id uint) (*models.CleaningType, error)

	ListRecords(ctx context.Context, f RecordFilter, page paging.Page) ([]models.CleaningRecord, int64, error)
	ExportRecords(ctx context.Context, f RecordFilter) ([]models.CleaningRecord, error)
}
