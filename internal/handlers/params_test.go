package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePage(t *testing.T) {
	page, err := parsePage(testContext("/x"))
	require.NoError(t, err)
	assert.Equal(t, paging.Page{Number: 1, Limit: paging.DefaultLimit}, page)

	page, err = parsePage(testContext("/x?page=3&limit=50"))
	require.NoError(t, err)
	assert.Equal(t, paging.Page{Number: 3, Limit: 50}, page)

	for _, q := range []string{"?page=0", "?page=abc", "?limit=0", "?limit=101"} {
		_, err := parsePage(testContext("/x" + q))
		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err), q)
	}
}

func TestParseRecordFilter(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)

	f, echo, err := parseRecordFilter(
		testContext("/x?building=Bloque%209&startDate=2025-01-01&endDate=2025-01-31&userId=7&cleaningTypeId=2"),
		loc,
	)
	require.NoError(t, err)

	assert.Equal(t, "Bloque 9", f.Building)
	require.NotNil(t, f.UserID)
	assert.Equal(t, uint(7), *f.UserID)
	require.NotNil(t, f.CleaningTypeID)
	assert.Equal(t, uint(2), *f.CleaningTypeID)
	require.NotNil(t, f.StartDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), *f.StartDate)
	assert.Equal(t, "2025-01-31", echo["endDate"])
	assert.Equal(t, "7", echo["userId"])
}

func TestParseRecordFilter_Rejects(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)

	tests := map[string]string{
		"bad date":      "/x?startDate=2025/01/01",
		"reversed":      "/x?startDate=2025-02-01&endDate=2025-01-01",
		"zero user":     "/x?userId=0",
		"negative type": "/x?cleaningTypeId=-1",
		"long building": "/x?building=" + strings.Repeat("a", 51),
		"blank":         "/x?building=%20",
	}

	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseRecordFilter(testContext(target), loc)
			assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
		})
	}
}

func TestParseID(t *testing.T) {
	c := testContext("/x")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := parseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = parseID(c, "id")
	assert.Error(t, err)
}
