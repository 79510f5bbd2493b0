package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/auth"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/account"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

type Login struct {
	repo   domain.Repository
	tokens *auth.TokenManager
}

func NewLogin(repo domain.Repository, tokens *auth.TokenManager) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute answers invalid_credentials for unknown emails, wrong passwords
// and inactive accounts alike.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, string, error) {

	invalid := httperr.UnauthorizedErr("invalid_credentials", "Credenciales inválidas")

	user, err := uc.repo.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", invalid
	}
	if err != nil {
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if !user.Active || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", invalid
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
