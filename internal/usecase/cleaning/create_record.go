package cleaning

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateRecord struct {
	repo  domain.Repository
	audit audit.Sink
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewCreateRecord(
	repo domain.Repository,
	audit audit.Sink,
	log logrus.FieldLogger,
	now func() time.Time,
) *CreateRecord {
	return &CreateRecord{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRecord) Execute(
	ctx context.Context,
	actingUserID uint,
	in domain.NewRecordInput,
) (*models.CleaningRecord, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// References must exist and be active
	// --------------------------------------------------
	if _, err := requireActiveLocation(ctx, uc.repo, in.LocationID); err != nil {
		return nil, err
	}
	if _, err := requireActiveCleaningType(ctx, uc.repo, in.CleaningTypeID); err != nil {
		return nil, err
	}
	if in.ProductID != nil {
		if _, err := requireActiveProduct(ctx, uc.repo, *in.ProductID); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	rec := domain.NewRecord(actingUserID, in, uc.now())
	if err := uc.repo.CreateRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   audit.ActionRecordCreated,
		Entity:   audit.EntityRecord,
		EntityID: &rec.ID,
		Metadata: map[string]any{
			"location_id":      rec.LocationID,
			"cleaning_type_id": rec.CleaningTypeID,
		},
	})

	uc.log.WithFields(logrus.Fields{
		"record_id": rec.ID,
		"user_id":   actingUserID,
		"action":    audit.ActionRecordCreated,
	}).Info("cleaning record created")

	return loadRecord(ctx, uc.repo, rec.ID)
}
