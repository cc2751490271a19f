package schema

import (
	"time"

	"github.com/KAsare1/donation-server/cmd/models"
)

// ShowUser is the response shape for users. It never carries the password.
type ShowUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewShowUser(u *models.User) ShowUser {
	return ShowUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Contact:   u.Contact,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserUpdate carries a plaintext password; the handler hashes it before the
// change set reaches the store.
type UserUpdate struct {
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
	Contact  Optional[string] `json:"contact"`
	Role     Optional[string] `json:"role"`
}

func (p UserUpdate) Validate() error {
	return rejectNull(map[string]interface{ IsNull() bool }{
		"name":     p.Name,
		"email":    p.Email,
		"password": p.Password,
		"contact":  p.Contact,
		"role":     p.Role,
	})
}

func (p UserUpdate) Changes() Changes {
	c := Changes{}
	Put(c, "name", p.Name)
	Put(c, "email", p.Email)
	Put(c, "password", p.Password)
	Put(c, "contact", p.Contact)
	Put(c, "role", p.Role)
	return c
}
