package account

import (
	"strings"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

func ValidRole(role string) bool {
	return role == models.RoleOperator || role == models.RoleAdmin
}

// NormalizeRole upper-cases role and defaults an empty one to OPERATOR.
func NormalizeRole(role string) (string, error) {
	r := strings.ToUpper(strings.TrimSpace(role))
	if r == "" {
		return models.RoleOperator, nil
	}
	if !ValidRole(r) {
		return "", httperr.ValidationErr("role", "Rol debe ser OPERATOR o ADMIN")
	}
	return r, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckActivation refuses to deactivate the last active admin.
// activeAdmins is the current count, target included.
func CheckActivation(target *models.User, active bool, activeAdmins int64) error {
	if active || !target.IsAdmin() || !target.Active {
		return nil
	}
	if activeAdmins <= 1 {
		return httperr.InvalidOperationErr("last_admin", "No se puede desactivar el último administrador")
	}
	return nil
}

// UserFilter narrows the admin user listing. Zero fields match all.
type UserFilter struct {
	Role   string
	Active *bool
}

func (f UserFilter) Validate() error {
	if f.Role != "" && !ValidRole(f.Role) {
		return httperr.ValidationErr("role", "Rol debe ser OPERATOR o ADMIN")
	}
	return nil
}
