package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

type CleaningGormRepository struct {
	db *gorm.DB
}

func NewCleaningGormRepository(db *gorm.DB) *CleaningGormRepository {
	return &CleaningGormRepository{db: db}
}

// --------------------------------------------------
// Master data
// --------------------------------------------------

func (r *CleaningGormRepository) GetLocation(
	ctx context.Context,
	id uint,
) (*models.Location, error) {

	var loc models.Location
	if err := r.db.WithContext(ctx).First(&loc, id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *CleaningGormRepository) GetCleaningType(
	ctx context.Context,
	id uint,
) (*models.CleaningType, error) {

	var ct models.CleaningType
	if err := r.db.WithContext(ctx).First(&ct, id).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *CleaningGormRepository) GetProduct(
	ctx context.Context,
	id uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CleaningGormRepository) ListActiveLocations(
	ctx context.Context,
) ([]models.Location, error) {

	var locs []models.Location
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("building ASC").
		Order("floor ASC").
		Order("room ASC").
		Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

func (r *CleaningGormRepository) ListActiveCleaningTypes(
	ctx context.Context,
) ([]models.CleaningType, error) {

	var types []models.CleaningType
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *CleaningGormRepository) ListActiveProducts(
	ctx context.Context,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// --------------------------------------------------
// Records
// --------------------------------------------------

func (r *CleaningGormRepository) CreateRecord(
	ctx context.Context,
	rec *models.CleaningRecord,
) error {
	rec.CreatedAt = utc(rec.CreatedAt)
	rec.EndTime = utcPtr(rec.EndTime)

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).Error
}

func (r *CleaningGormRepository) GetRecord(
	ctx context.Context,
	id uint,
) (*models.CleaningRecord, error) {

	var rec models.CleaningRecord
	if err := preloadRecordRelations(r.db.WithContext(ctx)).
		First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *CleaningGormRepository) UpdateRecordColumns(
	ctx context.Context,
	id uint,
	cols map[string]any,
) error {

	if ts, ok := cols["updated_at"].(time.Time); ok {
		cols["updated_at"] = utc(ts)
	}

	res := r.db.WithContext(ctx).
		Model(&models.CleaningRecord{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CleaningGormRepository) DeleteRecord(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.CleaningRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CleaningGormRepository) ListRecordsByUser(
	ctx context.Context,
	userID uint,
	page paging.Page,
) ([]models.CleaningRecord, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.CleaningRecord{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []models.CleaningRecord
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("CleaningType").
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	return recs, total, nil
}

// Compile-time check
var _ domain.Repository = (*CleaningGormRepository)(nil)
