package account

import (
	"context"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// UserWithCount is a user plus how many cleaning records they own.
type UserWithCount struct {
	models.User
	RecordCount int64
}

// ActivationGuard decides, inside the write transaction, whether target may
// move to the requested active state.
type ActivationGuard func(target *models.User, activeAdmins int64) error

type Repository interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	ListUsers(ctx context.Context, f UserFilter, page paging.Page) ([]UserWithCount, int64, error)

	// SetActive loads the user, counts active admins and runs guard in one
	// transaction before writing the flag. Missing users return
	// gorm.ErrRecordNotFound.
	SetActive(ctx context.Context, id uint, active bool, guard ActivationGuard) (*models.User, error)
}
