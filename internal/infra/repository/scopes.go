package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/domain/report"
)

// Times are written and compared in UTC so that stores without a native
// timestamptz order them correctly.
func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func withRange(q *gorm.DB, column string, r report.Range) *gorm.DB {
	if r.From != nil {
		q = q.Where(column+" >= ?", utc(*r.From))
	}
	if r.To != nil {
		if r.ToInclusive {
			q = q.Where(column+" <= ?", utc(*r.To))
		} else {
			q = q.Where(column+" < ?", utc(*r.To))
		}
	}
	return q
}

func preloadRecordRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("User").
		Preload("Location").
		Preload("CleaningType").
		Preload("Product")
}
