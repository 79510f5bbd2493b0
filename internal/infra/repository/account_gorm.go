package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/account"
	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(u).Error
}

func (r *AccountGormRepository) ListUsers(
	ctx context.Context,
	f domain.UserFilter,
	page paging.Page,
) ([]domain.UserWithCount, int64, error) {

	scope := func(q *gorm.DB) *gorm.DB {
		if f.Role != "" {
			q = q.Where("role = ?", f.Role)
		}
		if f.Active != nil {
			q = q.Where("active = ?", *f.Active)
		}
		return q
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	counts := make(map[uint]int64, len(users))
	if len(users) > 0 {
		ids := make([]uint, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}

		var rows []struct {
			UserID uint  `gorm:"column:user_id"`
			Total  int64 `gorm:"column:total"`
		}
		if err := r.db.WithContext(ctx).
			Model(&models.CleaningRecord{}).
			Select("user_id, COUNT(*) AS total").
			Where("user_id IN ?", ids).
			Group("user_id").
			Scan(&rows).Error; err != nil {
			return nil, 0, err
		}
		for _, row := range rows {
			counts[row.UserID] = row.Total
		}
	}

	out := make([]domain.UserWithCount, 0, len(users))
	for _, u := range users {
		out = append(out, domain.UserWithCount{User: u, RecordCount: counts[u.ID]})
	}

	return out, total, nil
}

func (r *AccountGormRepository) SetActive(
	ctx context.Context,
	id uint,
	active bool,
	guard domain.ActivationGuard,
) (*models.User, error) {

	var user models.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, id).Error; err != nil {
			return err
		}

		// Locking every active admin row serializes concurrent
		// deactivations of different admins.
		var adminIDs []uint
		if err := tx.
			Model(&models.User{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("role = ? AND active = ?", models.RoleAdmin, true).
			Pluck("id", &adminIDs).Error; err != nil {
			return err
		}

		if guard != nil {
			if err := guard(&user, int64(len(adminIDs))); err != nil {
				return err
			}
		}

		if err := tx.Model(&user).Update("active", active).Error; err != nil {
			return err
		}
		user.Active = active
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
