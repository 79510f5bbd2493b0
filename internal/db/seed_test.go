package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/upb-facilities/cleaning-records/internal/auth"
	"github.com/upb-facilities/cleaning-records/internal/logging"
	"github.com/upb-facilities/cleaning-records/internal/models"
	"github.com/upb-facilities/cleaning-records/internal/testutil"
)

func TestSeed_IsRepeatable(t *testing.T) {
	prev := auth.Cost
	auth.Cost = bcrypt.MinCost
	t.Cleanup(func() { auth.Cost = prev })

	db := testutil.NewDB(t)
	now := time.Date(2025, 1, 15, 15, 0, 0, 0, time.UTC)

	require.NoError(t, Seed(context.Background(), db, logging.Discard(), now))
	require.NoError(t, Seed(context.Background(), db, logging.Discard(), now))

	count := func(model any) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}

	assert.Equal(t, int64(3), count(&models.User{}))
	assert.Equal(t, int64(15), count(&models.Location{}))
	assert.Equal(t, int64(5), count(&models.CleaningType{}))
	assert.Equal(t, int64(8), count(&models.Product{}))
	assert.Equal(t, int64(3), count(&models.CleaningRecord{}))

	var admin models.User
	require.NoError(t, db.Where("email = ?", SeedAdminEmail).First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.Active)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, SeedAdminPassword))

	var withoutProduct int64
	require.NoError(t, db.Model(&models.CleaningRecord{}).Where("product_id IS NULL").Count(&withoutProduct).Error)
	assert.Equal(t, int64(1), withoutProduct)
}
