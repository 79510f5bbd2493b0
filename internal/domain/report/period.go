package report

import (
	"time"

	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

const (
	RecentLimit = 10
	TopN        = 5
)

// Range selects records by creation time: From <= created_at and
// created_at < To, or created_at <= To when ToInclusive.
type Range struct {
	From        *time.Time
	To          *time.Time
	ToInclusive bool
}

func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Periods are the dashboard windows, all relative to Now in Now's zone.
type Periods struct {
	Now      time.Time
	Today    Range
	ThisWeek Range
	Month    Range
}

// PeriodsAt computes today as [midnight, next midnight), and the week and
// month as their calendar start through now.
func PeriodsAt(now time.Time, firstDay time.Weekday) Periods {
	today := timezone.StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	week := timezone.StartOfWeek(now, firstDay)
	month := timezone.StartOfMonth(now)

	return Periods{
		Now:      now,
		Today:    Range{From: &today, To: &tomorrow},
		ThisWeek: Range{From: &week, To: &now, ToInclusive: true},
		Month:    Range{From: &month, To: &now, ToInclusive: true},
	}
}
