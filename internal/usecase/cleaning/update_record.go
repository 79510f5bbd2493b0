package cleaning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

type UpdateRecord struct {
	repo  domain.Repository
	audit audit.Sink
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewUpdateRecord(
	repo domain.Repository,
	audit audit.Sink,
	log logrus.FieldLogger,
	now func() time.Time,
) *UpdateRecord {
	return &UpdateRecord{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   now,
	}
}

// Execute applies the allow-listed patch to the record when actingUserID owns
// it and the edit window is still open. It returns the updated record with
// its relations loaded.
func (uc *UpdateRecord) Execute(
	ctx context.Context,
	actingUserID uint,
	recordID uint,
	patch domain.Patch,
) (*models.CleaningRecord, error) {

	patch, err := patch.Normalize()
	if err != nil {
		return nil, err
	}

	rec, err := loadRecord(ctx, uc.repo, recordID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.CheckMutation(rec, actingUserID, now, domain.ActionUpdate); err != nil {
		return nil, err
	}

	if patch.ProductSet && patch.ProductID != nil {
		if _, err := requireActiveProduct(ctx, uc.repo, *patch.ProductID); err != nil {
			return nil, err
		}
	}

	cols := patch.Columns()
	cols["updated_at"] = now

	if err := uc.repo.UpdateRecordColumns(ctx, recordID, cols); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recordNotFound()
		}
		return nil, fmt.Errorf("update record %d: %w", recordID, err)
	}

	changed := make([]string, 0, 2)
	if patch.ProductSet {
		changed = append(changed, domain.PatchKeyProductID)
	}
	if patch.ObservationsSet {
		changed = append(changed, domain.PatchKeyObservations)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   audit.ActionRecordUpdated,
		Entity:   audit.EntityRecord,
		EntityID: &recordID,
		Metadata: map[string]any{"fields": changed},
	})

	uc.log.WithFields(logrus.Fields{
		"record_id": recordID,
		"user_id":   actingUserID,
		"action":    audit.ActionRecordUpdated,
	}).Info("cleaning record updated")

	return loadRecord(ctx, uc.repo, recordID)
}
