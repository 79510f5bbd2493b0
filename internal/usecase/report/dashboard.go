package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/report"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type Stats struct {
	Today           int64
	ThisWeek        int64
	ThisMonth       int64
	ActiveUsers     int64
	ActiveLocations int64
}

type RankedUser struct {
	User  models.User
	Count int64
}

type RankedLocation struct {
	Location models.Location
	Count    int64
}

type RankedCleaningType struct {
	CleaningType models.CleaningType
	Count        int64
}

// Snapshot is the admin dashboard at one instant.
type Snapshot struct {
	GeneratedAt time.Time
	Stats       Stats

	RecentRecords []models.CleaningRecord

	TopOperators     []RankedUser
	TopLocations     []RankedLocation
	TopCleaningTypes []RankedCleaningType
}

// ======================================================
// USE CASE
// ======================================================

type Dashboard struct {
	repo      domain.Repository
	weekStart time.Weekday
	now       func() time.Time
}

func NewDashboard(
	repo domain.Repository,
	weekStart time.Weekday,
	now func() time.Time,
) *Dashboard {
	return &Dashboard{
		repo:      repo,
		weekStart: weekStart,
		now:       now,
	}
}

func (uc *Dashboard) Execute(ctx context.Context) (*Snapshot, error) {
	periods := domain.PeriodsAt(uc.now(), uc.weekStart)
	snap := &Snapshot{GeneratedAt: periods.Now}

	var (
		opRanks  []domain.RankEntry
		locRanks []domain.RankEntry
		ctRanks  []domain.RankEntry
	)

	// --------------------------------------------------
	// Counts, recent records and rankings are independent
	// --------------------------------------------------
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, rng domain.Range) {
		g.Go(func() error {
			n, err := uc.repo.CountRecords(gctx, rng)
			if err != nil {
				return fmt.Errorf("count records: %w", err)
			}
			*dst = n
			return nil
		})
	}
	count(&snap.Stats.Today, periods.Today)
	count(&snap.Stats.ThisWeek, periods.ThisWeek)
	count(&snap.Stats.ThisMonth, periods.Month)

	g.Go(func() error {
		n, err := uc.repo.CountActiveUsers(gctx)
		if err != nil {
			return fmt.Errorf("count active users: %w", err)
		}
		snap.Stats.ActiveUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.repo.CountActiveLocations(gctx)
		if err != nil {
			return fmt.Errorf("count active locations: %w", err)
		}
		snap.Stats.ActiveLocations = n
		return nil
	})
	g.Go(func() error {
		recs, err := uc.repo.RecentRecords(gctx, domain.RecentLimit)
		if err != nil {
			return fmt.Errorf("recent records: %w", err)
		}
		snap.RecentRecords = recs
		return nil
	})

	rank := func(dst *[]domain.RankEntry, dim domain.Dimension) {
		g.Go(func() error {
			entries, err := uc.repo.TopBy(gctx, dim, periods.Month, domain.TopN)
			if err != nil {
				return fmt.Errorf("top by %s: %w", dim, err)
			}
			*dst = entries
			return nil
		})
	}
	rank(&opRanks, domain.ByOperator)
	rank(&locRanks, domain.ByLocation)
	rank(&ctRanks, domain.ByCleaningType)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Enrichment: one lookup per ranked entry
	// --------------------------------------------------
	snap.TopOperators = make([]RankedUser, len(opRanks))
	snap.TopLocations = make([]RankedLocation, len(locRanks))
	snap.TopCleaningTypes = make([]RankedCleaningType, len(ctRanks))

	g, gctx = errgroup.WithContext(ctx)

	for i, e := range opRanks {
		g.Go(func() error {
			u, err := uc.repo.GetUser(gctx, e.ID)
			if err != nil {
				return fmt.Errorf("get user %d: %w", e.ID, err)
			}
			snap.TopOperators[i] = RankedUser{User: *u, Count: e.Count}
			return nil
		})
	}
	for i, e := range locRanks {
		g.Go(func() error {
			loc, err := uc.repo.GetLocation(gctx, e.ID)
			if err != nil {
				return fmt.Errorf("get location %d: %w", e.ID, err)
			}
			snap.TopLocations[i] = RankedLocation{Location: *loc, Count: e.Count}
			return nil
		})
	}
	for i, e := range ctRanks {
		g.Go(func() error {
			ct, err := uc.repo.GetCleaningType(gctx, e.ID)
			if err != nil {
				return fmt.Errorf("get cleaning type %d: %w", e.ID, err)
			}
			snap.TopCleaningTypes[i] = RankedCleaningType{CleaningType: *ct, Count: e.Count}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}
