package response

import (
	"time"

	"dodoensemble/internal/core/domain/user"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Name = du.Name
	u.CreatedAt = du.CreatedAt
}
