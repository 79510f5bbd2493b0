package cleaning

import (
	"time"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// EditWindow is how long after creation the owner may still change a record.
const EditWindow = 6 * time.Hour

// ===============================
// Lifecycle rule
// ===============================

// CanMutate reports whether actingUserID may update or delete rec at now.
// Only the stored creation timestamp is consulted.
func CanMutate(rec *models.CleaningRecord, actingUserID uint, now time.Time) bool {
	return CheckMutation(rec, actingUserID, now, ActionUpdate) == nil
}

type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// CheckMutation is CanMutate with a reason attached.
func CheckMutation(rec *models.CleaningRecord, actingUserID uint, now time.Time, action Action) error {
	if rec.UserID != actingUserID {
		return httperr.ForbiddenErr("not_record_owner", notOwnerMessage(action))
	}

	if now.Sub(rec.CreatedAt) > EditWindow {
		return httperr.ForbiddenErr("edit_window_expired", windowExpiredMessage(action))
	}

	return nil
}

// EditableUntil is the last instant the owner may still mutate rec.
func EditableUntil(rec *models.CleaningRecord) time.Time {
	return rec.CreatedAt.Add(EditWindow)
}

func notOwnerMessage(action Action) string {
	if action == ActionDelete {
		return "No puede eliminar este registro: solo su creador puede eliminarlo."
	}
	return "No puede editar este registro: solo su creador puede editarlo."
}

func windowExpiredMessage(action Action) string {
	if action == ActionDelete {
		return "No puede eliminar este registro. Solo puede eliminar sus registros dentro de las 6 horas posteriores a su creación."
	}
	return "No puede editar este registro. Solo puede editar sus registros dentro de las 6 horas posteriores a su creación."
}
