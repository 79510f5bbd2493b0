package report

import (
	"context"
	"fmt"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/report"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

type ListRecords struct {
	repo domain.Repository
}

func NewListRecords(repo domain.Repository) *ListRecords {
	return &ListRecords{repo: repo}
}

func (uc *ListRecords) Execute(
	ctx context.Context,
	f domain.RecordFilter,
	page paging.Page,
) ([]models.CleaningRecord, paging.Info, error) {

	if err := f.Validate(); err != nil {
		return nil, paging.Info{}, err
	}
	page = paging.New(page.Number, page.Limit)

	recs, total, err := uc.repo.ListRecords(ctx, f, page)
	if err != nil {
		return nil, paging.Info{}, fmt.Errorf("list records: %w", err)
	}

	return recs, page.Info(total), nil
}
