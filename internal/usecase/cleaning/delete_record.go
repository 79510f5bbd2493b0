package cleaning

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
)

type DeleteRecord struct {
	repo  domain.Repository
	audit audit.Sink
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewDeleteRecord(
	repo domain.Repository,
	audit audit.Sink,
	log logrus.FieldLogger,
	now func() time.Time,
) *DeleteRecord {
	return &DeleteRecord{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   now,
	}
}

// Execute permanently removes the record. Deleting a record that no longer
// exists answers record_not_found.
func (uc *DeleteRecord) Execute(
	ctx context.Context,
	actingUserID uint,
	recordID uint,
) error {

	rec, err := loadRecord(ctx, uc.repo, recordID)
	if err != nil {
		return err
	}

	if err := domain.CheckMutation(rec, actingUserID, uc.now(), domain.ActionDelete); err != nil {
		return err
	}

	deleted, err := uc.repo.DeleteRecord(ctx, recordID)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", recordID, err)
	}
	if !deleted {
		return recordNotFound()
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   audit.ActionRecordDeleted,
		Entity:   audit.EntityRecord,
		EntityID: &recordID,
		Metadata: map[string]any{
			"location_id": rec.LocationID,
			"created_at":  rec.CreatedAt,
		},
	})

	uc.log.WithFields(logrus.Fields{
		"record_id": recordID,
		"user_id":   actingUserID,
		"action":    audit.ActionRecordDeleted,
	}).Info("cleaning record deleted")

	return nil
}
