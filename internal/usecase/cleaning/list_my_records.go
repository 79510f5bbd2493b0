package cleaning

import (
	"context"
	"fmt"
	"time"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/cleaning"
	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// MyRecord is an own record plus whether it can still be edited now.
type MyRecord struct {
	Record  models.CleaningRecord
	CanEdit bool
}

type ListMyRecords struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListMyRecords(repo domain.Repository, now func() time.Time) *ListMyRecords {
	return &ListMyRecords{repo: repo, now: now}
}

func (uc *ListMyRecords) Execute(
	ctx context.Context,
	userID uint,
	page paging.Page,
) ([]MyRecord, paging.Info, error) {

	page = paging.New(page.Number, page.Limit)

	recs, total, err := uc.repo.ListRecordsByUser(ctx, userID, page)
	if err != nil {
		return nil, paging.Info{}, fmt.Errorf("list records of user %d: %w", userID, err)
	}

	now := uc.now()
	out := make([]MyRecord, 0, len(recs))
	for i := range recs {
		out = append(out, MyRecord{
			Record:  recs[i],
			CanEdit: domain.CanMutate(&recs[i], userID, now),
		})
	}

	return out, page.Info(total), nil
}
