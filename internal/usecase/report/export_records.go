package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/report"
)

type ExportRecords struct {
	repo domain.Repository
	loc  *time.Location
}

func NewExportRecords(repo domain.Repository, loc *time.Location) *ExportRecords {
	return &ExportRecords{repo: repo, loc: loc}
}

// Execute returns every record matching f as flat rows, newest first.
func (uc *ExportRecords) Execute(
	ctx context.Context,
	f domain.RecordFilter,
) ([]domain.ExportRow, error) {

	if err := f.Validate(); err != nil {
		return nil, err
	}

	recs, err := uc.repo.ExportRecords(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("export records: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(recs))
	for i := range recs {
		rows = append(rows, domain.NewExportRow(&recs[i], uc.loc))
	}
	return rows, nil
}

// WriteCSV writes a header line followed by rows.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.ExportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
