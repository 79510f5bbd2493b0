package cleaning

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
)

func rawPatch(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestParsePatch_DropsUnknownFields(t *testing.T) {
	p, err := ParsePatch(rawPatch(t, `{"observations":"x","locationId":999,"userId":1,"createdAt":"2020-01-01"}`))
	require.NoError(t, err)

	assert.True(t, p.ObservationsSet)
	assert.Equal(t, "x", *p.Observations)
	assert.False(t, p.ProductSet)
	assert.Equal(t, map[string]any{"observations": p.Observations}, p.Columns())
}

func TestParsePatch_Product(t *testing.T) {
	p, err := ParsePatch(rawPatch(t, `{"productId":3}`))
	require.NoError(t, err)
	require.NotNil(t, p.ProductID)
	assert.Equal(t, uint(3), *p.ProductID)

	p, err = ParsePatch(rawPatch(t, `{"productId":null}`))
	require.NoError(t, err)
	assert.True(t, p.ProductSet)
	assert.Nil(t, p.ProductID)
	assert.Contains(t, p.Columns(), "product_id")

	for _, bad := range []string{`{"productId":0}`, `{"productId":-2}`, `{"productId":"abc"}`} {
		_, err = ParsePatch(rawPatch(t, bad))
		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err), bad)
	}
}

func TestParsePatch_Observations(t *testing.T) {
	p, err := ParsePatch(rawPatch(t, `{"observations":"   limpio   "}`))
	require.NoError(t, err)
	assert.Equal(t, "limpio", *p.Observations)

	p, err = ParsePatch(rawPatch(t, `{"observations":"   "}`))
	require.NoError(t, err)
	assert.True(t, p.ObservationsSet)
	assert.Nil(t, p.Observations)

	long := strings.Repeat("a", MaxObservationsLength+1)
	_, err = ParsePatch(map[string]json.RawMessage{"observations": json.RawMessage(`"` + long + `"`)})
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	exact := strings.Repeat("ñ", MaxObservationsLength)
	_, err = ParsePatch(map[string]json.RawMessage{"observations": json.RawMessage(`"` + exact + `"`)})
	assert.NoError(t, err)
}

func TestParsePatch_Empty(t *testing.T) {
	p, err := ParsePatch(rawPatch(t, `{"duration":30}`))
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Columns())
}
