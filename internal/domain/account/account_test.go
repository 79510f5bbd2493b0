package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

func TestNormalizeRole(t *testing.T) {
	r, err := NormalizeRole("")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOperator, r)

	r, err = NormalizeRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, r)

	_, err = NormalizeRole("root")
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func TestCheckActivation(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin, Active: true}
	operator := &models.User{ID: 2, Role: models.RoleOperator, Active: true}
	inactiveAdmin := &models.User{ID: 3, Role: models.RoleAdmin, Active: false}

	err := CheckActivation(admin, false, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "last_admin"))
	assert.Equal(t, httperr.KindInvalidOperation, httperr.KindOf(err))

	assert.NoError(t, CheckActivation(admin, false, 2))
	assert.NoError(t, CheckActivation(admin, true, 1))
	assert.NoError(t, CheckActivation(operator, false, 1))
	assert.NoError(t, CheckActivation(inactiveAdmin, false, 1))
}

func TestUserFilter_Validate(t *testing.T) {
	assert.NoError(t, UserFilter{}.Validate())
	assert.NoError(t, UserFilter{Role: models.RoleAdmin}.Validate())
	assert.Error(t, UserFilter{Role: "GUEST"}.Validate())
}
