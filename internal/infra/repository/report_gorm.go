package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/report"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// ======================================================
// COUNTS
// ======================================================

func (r *ReportGormRepository) CountRecords(
	ctx context.Context,
	rng domain.Range,
) (int64, error) {

	var total int64
	q := r.db.WithContext(ctx).Model(&models.CleaningRecord{})
	if err := withRange(q, "created_at", rng).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ReportGormRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("active = ?", true).
		Count(&total).Error
	return total, err
}

func (r *ReportGormRepository) CountActiveLocations(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("active = ?", true).
		Count(&total).Error
	return total, err
}

// ======================================================
// RANKINGS
// ======================================================

func (r *ReportGormRepository) RecentRecords(
	ctx context.Context,
	limit int,
) ([]models.CleaningRecord, error) {

	var recs []models.CleaningRecord
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Location").
		Preload("CleaningType").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ReportGormRepository) TopBy(
	ctx context.Context,
	dim domain.Dimension,
	rng domain.Range,
	limit int,
) ([]domain.RankEntry, error) {

	switch dim {
	case domain.ByOperator, domain.ByLocation, domain.ByCleaningType:
	default:
		return nil, fmt.Errorf("unknown ranking dimension %q", dim)
	}
	col := string(dim)

	var rows []struct {
		ID    uint  `gorm:"column:id"`
		Total int64 `gorm:"column:total"`
	}

	q := r.db.WithContext(ctx).
		Model(&models.CleaningRecord{}).
		Select(col + " AS id, COUNT(*) AS total")
	if err := withRange(q, "created_at", rng).
		Group(col).
		Order("total DESC").
		Order(col + " ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.RankEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RankEntry{ID: row.ID, Count: row.Total})
	}
	return out, nil
}

// ======================================================
// ENRICHMENT
// ======================================================

func (r *ReportGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *ReportGormRepository) GetLocation(ctx context.Context, id uint) (*models.Location, error) {
	var loc models.Location
	if err := r.db.WithContext(ctx).First(&loc, id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *ReportGormRepository) GetCleaningType(ctx context.Context, id uint) (*models.CleaningType, error) {
	var ct models.CleaningType
	if err := r.db.WithContext(ctx).First(&ct, id).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

// ======================================================
// LISTING / EXPORT
// ======================================================

// filtered builds a fresh query for f each call so the count and the page
// query never share statement state.
func (r *ReportGormRepository) filtered(
	ctx context.Context,
	f domain.RecordFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).Model(&models.CleaningRecord{})

	if pattern := f.BuildingPattern(); pattern != "" {
		q = q.
			Joins("JOIN locations ON locations.id = cleaning_records.location_id").
			Where(`LOWER(locations.building) LIKE ? ESCAPE '\'`, pattern)
	}
	if f.UserID != nil {
		q = q.Where("cleaning_records.user_id = ?", *f.UserID)
	}
	if f.CleaningTypeID != nil {
		q = q.Where("cleaning_records.cleaning_type_id = ?", *f.CleaningTypeID)
	}

	return withRange(q, "cleaning_records.created_at", f.CreatedRange())
}

func (r *ReportGormRepository) ListRecords(
	ctx context.Context,
	f domain.RecordFilter,
	page paging.Page,
) ([]models.CleaningRecord, int64, error) {

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []models.CleaningRecord
	if err := preloadRecordRelations(r.filtered(ctx, f)).
		Select("cleaning_records.*").
		Order("cleaning_records.created_at DESC").
		Order("cleaning_records.id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	return recs, total, nil
}

func (r *ReportGormRepository) ExportRecords(
	ctx context.Context,
	f domain.RecordFilter,
) ([]models.CleaningRecord, error) {

	var recs []models.CleaningRecord
	if err := preloadRecordRelations(r.filtered(ctx, f)).
		Select("cleaning_records.*").
		Order("cleaning_records.created_at DESC").
		Order("cleaning_records.id DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
