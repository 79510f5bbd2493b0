package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	domain "github.com/upb-facilities/cleaning-records/internal/domain/report"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/infra/repository"
	"github.com/upb-facilities/cleaning-records/internal/logging"
	"github.com/upb-facilities/cleaning-records/internal/models"
	"github.com/upb-facilities/cleaning-records/internal/testutil"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

var bogota = timezone.Location(timezone.DefaultTimezone)

func fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ======================================================
// DASHBOARD
// ======================================================

func TestDashboard_PeriodCountsAndRankings(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := repository.NewReportGormRepository(db)

	// Friday 2025-01-24 15:00 local.
	now := time.Date(2025, 1, 24, 15, 0, 0, 0, bogota)

	a := fx.User(models.RoleOperator, true)
	b := fx.User(models.RoleOperator, true)
	fx.User(models.RoleOperator, false)
	bath := fx.Location("Bloque 9", "1", "Baño 101")
	hall := fx.Location("Bloque 10", "1", "Pasillo")
	desinf := fx.CleaningType("Desinfección")
	barrido := fx.CleaningType("Barrido")

	fx.Record(a, bath, desinf, nil, time.Date(2025, 1, 24, 8, 0, 0, 0, bogota))   // today
	fx.Record(a, bath, desinf, nil, time.Date(2025, 1, 21, 8, 0, 0, 0, bogota))   // this week
	fx.Record(a, hall, barrido, nil, time.Date(2025, 1, 3, 8, 0, 0, 0, bogota))   // this month
	fx.Record(b, hall, desinf, nil, time.Date(2025, 1, 10, 8, 0, 0, 0, bogota))   // this month
	fx.Record(b, bath, barrido, nil, time.Date(2024, 12, 20, 8, 0, 0, 0, bogota)) // last month

	snap, err := NewDashboard(repo, time.Sunday, fixed(now)).Execute(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 1, snap.Stats.Today)
	assert.EqualValues(t, 2, snap.Stats.ThisWeek)
	assert.EqualValues(t, 4, snap.Stats.ThisMonth)
	assert.EqualValues(t, 2, snap.Stats.ActiveUsers)
	assert.EqualValues(t, 2, snap.Stats.ActiveLocations)

	require.Len(t, snap.RecentRecords, 5)
	assert.Equal(t, a.Name, snap.RecentRecords[0].User.Name)

	require.Len(t, snap.TopOperators, 2)
	assert.Equal(t, a.ID, snap.TopOperators[0].User.ID)
	assert.EqualValues(t, 3, snap.TopOperators[0].Count)
	assert.Equal(t, b.Email, snap.TopOperators[1].User.Email)
	assert.EqualValues(t, 1, snap.TopOperators[1].Count)

	require.Len(t, snap.TopLocations, 2)
	// Both locations have two records this month; ties go to the lower id.
	assert.Equal(t, "Baño 101", snap.TopLocations[0].Location.Room)

	require.Len(t, snap.TopCleaningTypes, 2)
	assert.Equal(t, "Desinfección", snap.TopCleaningTypes[0].CleaningType.Name)
	assert.EqualValues(t, 3, snap.TopCleaningTypes[0].Count)
}

func TestDashboard_EmptyStore(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewReportGormRepository(db)

	snap, err := NewDashboard(repo, time.Monday, fixed(time.Now())).Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, snap.Stats.ThisMonth)
	assert.Empty(t, snap.RecentRecords)
	assert.Empty(t, snap.TopOperators)
}

// ======================================================
// LIST
// ======================================================

func TestListRecords_ClampsPageAndValidates(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	uc := NewListRecords(repository.NewReportGormRepository(db))
	ctx := context.Background()

	owner := fx.User(models.RoleOperator, true)
	loc := fx.Location("Bloque 9", "1", "Baño 101")
	ct := fx.CleaningType("Desinfección")
	for i := 0; i < 3; i++ {
		fx.Record(owner, loc, ct, nil, time.Now().Add(-time.Duration(i)*time.Minute))
	}

	recs, info, err := uc.Execute(ctx, domain.RecordFilter{}, paging.Page{Number: -1, Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	assert.Equal(t, paging.Info{Page: 1, Limit: paging.MaxLimit, Total: 3, Pages: 1}, info)

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, bogota)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, bogota)
	_, _, err = uc.Execute(ctx, domain.RecordFilter{StartDate: &start, EndDate: &end}, paging.New(1, 10))
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

// ======================================================
// EXPORT
// ======================================================

func TestExportRecords_SingleDayScenario(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	uc := NewExportRecords(repository.NewReportGormRepository(db), bogota)

	owner := fx.User(models.RoleOperator, true)
	loc := fx.Location("Bloque 9", "", "Baño 101")
	ct := fx.CleaningType("Desinfección")
	p := fx.Product("Hipoclorito", true)

	fx.Record(owner, loc, ct, &p.ID, time.Date(2025, 1, 1, 9, 0, 0, 0, bogota))
	fx.Record(owner, loc, ct, nil, time.Date(2025, 1, 1, 18, 0, 0, 0, bogota))
	fx.Record(owner, loc, ct, nil, time.Date(2025, 1, 2, 9, 0, 0, 0, bogota))
	fx.Record(owner, loc, ct, nil, time.Date(2024, 12, 31, 22, 0, 0, 0, bogota))

	day, err := timezone.ParseDate("2025-01-01", bogota)
	require.NoError(t, err)

	rows, err := uc.Execute(context.Background(), domain.RecordFilter{StartDate: &day, EndDate: &day})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Equal(t, "01/01/2025", row.Fecha)
		assert.Equal(t, "N/A", row.Piso)
	}
	assert.Equal(t, "06:00:00 p. m.", rows[0].Hora)
	assert.Equal(t, "No especificado", rows[0].Producto)
	assert.Equal(t, "Hipoclorito", rows[1].Producto)
}

func TestWriteCSV_QuotesAndHeader(t *testing.T) {
	rows := []domain.ExportRow{{
		ID:            1,
		Fecha:         "01/01/2025",
		Operario:      "Ana",
		Producto:      "No especificado",
		Observaciones: `Se usó "cloro", dos veces`,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ExportColumns, records[0])
	assert.Equal(t, `Se usó "cloro", dos veces`, records[1][12])
}

// ======================================================
// ARCHIVE
// ======================================================

type memUploader struct {
	key         string
	contentType string
	body        string
}

func (m *memUploader) Upload(_ context.Context, key string, body io.Reader, contentType string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.key, m.contentType, m.body = key, contentType, string(b)
	return nil
}

func TestArchiveExport_UploadsCSV(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	export := NewExportRecords(repository.NewReportGormRepository(db), bogota)

	owner := fx.User(models.RoleOperator, true)
	fx.Record(owner, fx.Location("Bloque 9", "1", "Baño 101"), fx.CleaningType("Desinfección"), nil, time.Now())

	up := &memUploader{}
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, bogota)
	res, err := NewArchiveExport(export, up, logging.Discard(), fixed(now)).
		Execute(context.Background(), owner.ID, domain.RecordFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rows)
	assert.True(t, strings.HasPrefix(res.Key, "exports/2025-03-04/"))
	assert.True(t, strings.HasSuffix(res.Key, ".csv"))
	assert.Equal(t, res.Key, up.key)
	assert.Contains(t, up.contentType, "text/csv")
	assert.True(t, strings.HasPrefix(up.body, strings.Join(domain.ExportColumns, ",")))
}

func TestArchiveExport_DisabledWithoutUploader(t *testing.T) {
	db := testutil.NewDB(t)
	export := NewExportRecords(repository.NewReportGormRepository(db), bogota)

	_, err := NewArchiveExport(export, nil, logging.Discard(), time.Now).
		Execute(context.Background(), 1, domain.RecordFilter{})
	assert.True(t, httperr.IsBusiness(err, "export_archive_disabled"))
}
