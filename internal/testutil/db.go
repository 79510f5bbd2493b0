// Package testutil provides an in-memory database and fixture builders for
// repository, use case and handler tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/upb-facilities/cleaning-records/internal/models"
)

// NewDB opens a migrated in-memory SQLite database private to t.
// A single connection keeps every query, including concurrent ones, on the
// same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// Fixtures creates rows with sensible defaults. Each call to a builder
// produces a unique row.
type Fixtures struct {
	t   *testing.T
	db  *gorm.DB
	seq int
}

func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) next() int {
	f.seq++
	return f.seq
}

func (f *Fixtures) User(role string, active bool) *models.User {
	f.t.Helper()
	n := f.next()
	u := &models.User{
		Name:         fmt.Sprintf("Usuario %d", n),
		Email:        fmt.Sprintf("user%d@upb.edu.co", n),
		PasswordHash: "x",
		Role:         role,
		Active:       active,
	}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

func (f *Fixtures) Location(building, floor, room string) *models.Location {
	f.t.Helper()
	loc := &models.Location{
		Building: building,
		Floor:    floor,
		Room:     room,
		Type:     models.LocationBathroom,
		Active:   true,
	}
	require.NoError(f.t, f.db.Create(loc).Error)
	return loc
}

func (f *Fixtures) CleaningType(name string) *models.CleaningType {
	f.t.Helper()
	ct := &models.CleaningType{Name: name, Active: true}
	require.NoError(f.t, f.db.Create(ct).Error)
	return ct
}

func (f *Fixtures) Product(name string, active bool) *models.Product {
	f.t.Helper()
	p := &models.Product{Name: name, Category: "Desinfectante", Active: active}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

// Record inserts a record created at the given instant. productID may be nil.
func (f *Fixtures) Record(
	owner *models.User,
	loc *models.Location,
	ct *models.CleaningType,
	productID *uint,
	createdAt time.Time,
) *models.CleaningRecord {
	f.t.Helper()
	rec := &models.CleaningRecord{
		UserID:         owner.ID,
		LocationID:     loc.ID,
		CleaningTypeID: ct.ID,
		ProductID:      productID,
		CreatedAt:      createdAt.UTC(),
	}
	require.NoError(f.t, f.db.Omit("User", "Location", "CleaningType", "Product").Create(rec).Error)
	return rec
}
