package report

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/upb-facilities/cleaning-records/internal/domain/report"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/storage"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

const archivePrefix = "exports"

type ArchiveResult struct {
	Key  string
	Rows int
}

// ArchiveExport renders an export as CSV and stores it in the archive bucket.
type ArchiveExport struct {
	export   *ExportRecords
	uploader storage.Uploader
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewArchiveExport accepts a nil uploader, in which case archiving is
// reported as disabled.
func NewArchiveExport(
	export *ExportRecords,
	uploader storage.Uploader,
	log logrus.FieldLogger,
	now func() time.Time,
) *ArchiveExport {
	return &ArchiveExport{
		export:   export,
		uploader: uploader,
		log:      log,
		now:      now,
	}
}

func (uc *ArchiveExport) Execute(
	ctx context.Context,
	actingUserID uint,
	f domain.RecordFilter,
) (*ArchiveResult, error) {

	if uc.uploader == nil {
		return nil, httperr.InvalidOperationErr(
			"export_archive_disabled",
			"El archivo de exportaciones no está configurado",
		)
	}

	rows, err := uc.export.Execute(ctx, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	key := path.Join(
		archivePrefix,
		uc.now().Format(timezone.DateLayout),
		uuid.NewString()+".csv",
	)
	if err := uc.uploader.Upload(ctx, key, bytes.NewReader(buf.Bytes()), "text/csv; charset=utf-8"); err != nil {
		return nil, fmt.Errorf("archive export: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"user_id": actingUserID,
		"key":     key,
		"rows":    len(rows),
	}).Info("export archived")

	return &ArchiveResult{Key: key, Rows: len(rows)}, nil
}
