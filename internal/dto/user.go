package dto

import (
	"time"

	"github.com/upb-facilities/cleaning-records/internal/domain/account"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

// UserView never carries the password hash.
type UserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserWithCountView struct {
	UserView
	Count struct {
		CleaningRecords int64 `json:"cleaningRecords"`
	} `json:"_count"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserWithCountViews(users []account.UserWithCount) []UserWithCountView {
	out := make([]UserWithCountView, 0, len(users))
	for i := range users {
		v := UserWithCountView{UserView: NewUserView(&users[i].User)}
		v.Count.CleaningRecords = users[i].RecordCount
		out = append(out, v)
	}
	return out
}
