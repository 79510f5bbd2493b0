package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

const (
	ActionRecordCreated   = "record_created"
	ActionRecordUpdated   = "record_updated"
	ActionRecordDeleted   = "record_deleted"
	ActionUserActivated   = "user_activated"
	ActionUserDeactivated = "user_deactivated"

	EntityRecord = "cleaning_record"
	EntityUser   = "user"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

// Filter narrows the audit trail listing. From and To are inclusive.
type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
}

func (l *Logger) List(
	ctx context.Context,
	f Filter,
	page paging.Page,
) ([]models.AuditLog, int64, error) {

	scope := func(q *gorm.DB) *gorm.DB {
		if f.Action != "" {
			q = q.Where("action = ?", f.Action)
		}
		if f.Entity != "" {
			q = q.Where("entity = ?", f.Entity)
		}
		if f.From != nil {
			q = q.Where("created_at >= ?", f.From.UTC())
		}
		if f.To != nil {
			q = q.Where("created_at <= ?", f.To.UTC())
		}
		return q
	}

	var total int64
	if err := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := l.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
