package user

import (
	"strconv"

	"github.com/restosuite/storefront-backend/internal/session"
)

type User struct {
	ID        int     `json:"userId"`
	Email     string  `json:"email"`
	Password  string  `json:"password,omitempty"`
	Name      string  `json:"name"`
	Phone     string  `json:"phoneNumber"`
	Role      string  `json:"role"`
	AvatarPic *string `json:"avatarPic,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// SessionUser shapes the account for the session layer. Registration
// defaults the role to Customer; the ADMIN role is only ever assigned
// through seeding or a direct admin update.
func (u User) SessionUser() session.User {
	s := session.User{
		ID:          strconv.Itoa(u.ID),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		PhoneNumber: u.Phone,
	}
	if u.AvatarPic != nil {
		s.Avatar = *u.AvatarPic
	}
	return s
}
