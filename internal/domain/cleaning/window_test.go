package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

func recordAt(owner uint, createdAt time.Time) *models.CleaningRecord {
	return &models.CleaningRecord{ID: 1, UserID: owner, CreatedAt: createdAt}
}

func TestCanMutate_OnlyOwner(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rec := recordAt(42, created)

	offsets := []time.Duration{0, time.Minute, 3 * time.Hour, EditWindow, 48 * time.Hour}
	for _, off := range offsets {
		assert.False(t, CanMutate(rec, 7, created.Add(off)), "offset %s", off)
		assert.False(t, CanMutate(rec, 0, created.Add(off)), "offset %s", off)
	}
}

func TestCanMutate_WindowBoundary(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rec := recordAt(42, created)

	assert.True(t, CanMutate(rec, 42, created))
	assert.True(t, CanMutate(rec, 42, created.Add(EditWindow-time.Second)))
	assert.True(t, CanMutate(rec, 42, created.Add(EditWindow)))
	assert.False(t, CanMutate(rec, 42, created.Add(EditWindow+time.Second)))
}

func TestCanMutate_ComparesInstantsAcrossZones(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rec := recordAt(42, created)

	// 14:00Z is 09:00 in Bogota; still 4h after creation.
	assert.True(t, CanMutate(rec, 42, time.Date(2025, 1, 1, 9, 0, 0, 0, bogota)))
	// 17:00Z is 12:00 in Bogota; 7h after creation.
	assert.False(t, CanMutate(rec, 42, time.Date(2025, 1, 1, 12, 0, 0, 0, bogota)))
}

func TestCheckMutation_Reasons(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rec := recordAt(42, created)

	err := CheckMutation(rec, 7, created, ActionUpdate)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_record_owner"))
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	err = CheckMutation(rec, 42, created.Add(7*time.Hour), ActionDelete)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "edit_window_expired"))
	assert.Contains(t, err.(httperr.BusinessError).Message, "eliminar")

	assert.NoError(t, CheckMutation(rec, 42, created.Add(time.Hour), ActionDelete))
	assert.Equal(t, created.Add(6*time.Hour), EditableUntil(rec))
}
