package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodsAt(t *testing.T) {
	// Wednesday.
	now := time.Date(2025, 1, 22, 15, 30, 0, 0, time.UTC)

	p := PeriodsAt(now, time.Sunday)

	assert.Equal(t, time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC), *p.Today.From)
	assert.Equal(t, time.Date(2025, 1, 23, 0, 0, 0, 0, time.UTC), *p.Today.To)
	assert.False(t, p.Today.ToInclusive)

	assert.Equal(t, time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), *p.ThisWeek.From)
	assert.Equal(t, now, *p.ThisWeek.To)
	assert.True(t, p.ThisWeek.ToInclusive)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *p.Month.From)
	assert.Equal(t, now, *p.Month.To)

	monday := PeriodsAt(now, time.Monday)
	assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), *monday.ThisWeek.From)
}

func TestPeriodsAt_UsesZoneOfNow(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 02:00Z on the 1st is still the 31st in Bogota.
	now := time.Date(2025, 2, 1, 2, 0, 0, 0, time.UTC).In(bogota)
	p := PeriodsAt(now, time.Sunday)

	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, bogota), *p.Today.From)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, bogota), *p.Month.From)
}
