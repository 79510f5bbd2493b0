package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/upb-facilities/cleaning-records/internal/auth"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/account"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
	"github.com/upb-facilities/cleaning-records/internal/validators"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Register struct {
	repo        domain.Repository
	tokens      *auth.TokenManager
	checkDomain func(email string) bool
	log         logrus.FieldLogger
}

// NewRegister takes the email domain check as a function so it can be
// swapped when DNS is unavailable.
func NewRegister(
	repo domain.Repository,
	tokens *auth.TokenManager,
	checkDomain func(email string) bool,
	log logrus.FieldLogger,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		checkDomain: checkDomain,
		log:         log,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, string, error) {

	name := strings.TrimSpace(in.Name)
	if !validators.IsValidName(name) {
		return nil, "", httperr.ValidationErr("name", "Nombre debe tener entre 2 y 50 caracteres y solo puede contener letras y espacios")
	}

	email := domain.NormalizeEmail(in.Email)
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, "", httperr.ValidationErr("email", "El dominio del correo no parece ser válido")
	}

	if !validators.IsStrongPassword(in.Password) {
		return nil, "", httperr.ValidationErr("password", "Contraseña debe tener al menos 6 caracteres, una minúscula, una mayúscula y un número")
	}

	role, err := domain.NormalizeRole(in.Role)
	if err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, "", httperr.BusinessError{
				Kind:    httperr.KindValidation,
				Code:    "email_already_registered",
				Message: "El email ya está registrado",
				Field:   "email",
			}
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	uc.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user registered")

	return user, token, nil
}
