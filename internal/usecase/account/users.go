package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/account"
	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

func userNotFound() error {
	return httperr.NotFoundErr("user_not_found", "Usuario no encontrado")
}

// ======================================================
// ME
// ======================================================

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// ======================================================
// LIST
// ======================================================

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	f domain.UserFilter,
	page paging.Page,
) ([]domain.UserWithCount, paging.Info, error) {

	if err := f.Validate(); err != nil {
		return nil, paging.Info{}, err
	}
	page = paging.New(page.Number, page.Limit)

	users, total, err := uc.repo.ListUsers(ctx, f, page)
	if err != nil {
		return nil, paging.Info{}, fmt.Errorf("list users: %w", err)
	}
	return users, page.Info(total), nil
}

// ======================================================
// ACTIVATION
// ======================================================

type SetUserActive struct {
	repo  domain.Repository
	audit audit.Sink
	log   logrus.FieldLogger
}

func NewSetUserActive(
	repo domain.Repository,
	audit audit.Sink,
	log logrus.FieldLogger,
) *SetUserActive {
	return &SetUserActive{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// Execute flips the active flag of targetID. Deactivating the last active
// admin fails with last_admin.
func (uc *SetUserActive) Execute(
	ctx context.Context,
	actingUserID uint,
	targetID uint,
	active bool,
) (*models.User, error) {

	guard := func(target *models.User, activeAdmins int64) error {
		return domain.CheckActivation(target, active, activeAdmins)
	}

	user, err := uc.repo.SetActive(ctx, targetID, active, guard)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userNotFound()
	}
	if err != nil {
		if httperr.KindOf(err) != "" {
			return nil, err
		}
		return nil, fmt.Errorf("set user %d active=%t: %w", targetID, active, err)
	}

	action := audit.ActionUserDeactivated
	if active {
		action = audit.ActionUserActivated
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   action,
		Entity:   audit.EntityUser,
		EntityID: &user.ID,
	})

	uc.log.WithFields(logrus.Fields{
		"user_id":   actingUserID,
		"target_id": user.ID,
		"action":    action,
	}).Info("user status changed")

	return user, nil
}
