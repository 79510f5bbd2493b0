package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/models"
	"github.com/upb-facilities/cleaning-records/internal/testutil"
)

func TestCleaningRepo_CatalogListsOnlyActive(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewCleaningGormRepository(db)
	ctx := context.Background()

	fx.Location("Bloque 9", "1", "Baño 101")
	hidden := fx.Location("Bloque 9", "2", "Baño 201")
	require.NoError(t, db.Model(hidden).Update("active", false).Error)

	fx.Product("Hipoclorito", true)
	fx.Product("Alcohol", false)

	locs, err := repo.ListActiveLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Baño 101", locs[0].Room)

	products, err := repo.ListActiveProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Hipoclorito", products[0].Name)
}

func TestCleaningRepo_CreateAndGetRecord(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewCleaningGormRepository(db)
	ctx := context.Background()

	owner := fx.User(models.RoleOperator, true)
	loc := fx.Location("Bloque 9", "1", "Baño 101")
	ct := fx.CleaningType("Desinfección")
	p := fx.Product("Hipoclorito", true)

	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	created := time.Date(2025, 1, 1, 5, 0, 0, 0, bogota)
	end := created.Add(30 * time.Minute)
	dur := 30

	rec := &models.CleaningRecord{
		UserID:         owner.ID,
		LocationID:     loc.ID,
		CleaningTypeID: ct.ID,
		ProductID:      &p.ID,
		Duration:       &dur,
		EndTime:        &end,
		CreatedAt:      created,
	}
	require.NoError(t, repo.CreateRecord(ctx, rec))
	require.NotZero(t, rec.ID)

	got, err := repo.GetRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, owner.Email, got.User.Email)
	assert.Equal(t, "Baño 101", got.Location.Room)
	assert.Equal(t, "Desinfección", got.CleaningType.Name)
	require.NotNil(t, got.Product)
	assert.Equal(t, "Hipoclorito", got.Product.Name)
	assert.Nil(t, got.UpdatedAt)

	_, err = repo.GetRecord(ctx, rec.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCleaningRepo_UpdateWritesOnlyGivenColumns(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewCleaningGormRepository(db)
	ctx := context.Background()

	owner := fx.User(models.RoleOperator, true)
	loc := fx.Location("Bloque 9", "1", "Baño 101")
	ct := fx.CleaningType("Desinfección")
	rec := fx.Record(owner, loc, ct, nil, time.Now())

	stamp := time.Now()
	require.NoError(t, repo.UpdateRecordColumns(ctx, rec.ID, map[string]any{
		"observations": "x",
		"updated_at":   stamp,
	}))

	got, err := repo.GetRecord(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Observations)
	assert.Equal(t, "x", *got.Observations)
	assert.Equal(t, loc.ID, got.LocationID)
	require.NotNil(t, got.UpdatedAt)

	err = repo.UpdateRecordColumns(ctx, rec.ID+100, map[string]any{"observations": "y"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCleaningRepo_DeleteIsPermanent(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewCleaningGormRepository(db)
	ctx := context.Background()

	rec := fx.Record(
		fx.User(models.RoleOperator, true),
		fx.Location("Bloque 9", "1", "Baño 101"),
		fx.CleaningType("Desinfección"),
		nil,
		time.Now(),
	)

	deleted, err := repo.DeleteRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCleaningRepo_ListRecordsByUser(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewCleaningGormRepository(db)
	ctx := context.Background()

	me := fx.User(models.RoleOperator, true)
	other := fx.User(models.RoleOperator, true)
	loc := fx.Location("Bloque 9", "1", "Baño 101")
	ct := fx.CleaningType("Desinfección")

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		fx.Record(me, loc, ct, nil, base.Add(time.Duration(i)*time.Hour))
	}
	fx.Record(other, loc, ct, nil, base)

	recs, total, err := repo.ListRecordsByUser(ctx, me.ID, paging.New(1, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, recs, 2)
	assert.True(t, recs[0].CreatedAt.After(recs[1].CreatedAt))
	assert.Equal(t, "Baño 101", recs[0].Location.Room)
}
