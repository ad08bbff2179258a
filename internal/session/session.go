package session

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Roles as the storefront spells them. Comparison is case-insensitive
// because persisted users carry a mix of "ADMIN", "Admin" and "customer".
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "Customer"
)

// User is the externally-managed identity of the signed-in customer or
// admin. The cart/order core never requires one: a zero User is a guest.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}

// FromCtx rebuilds the session user from the JWT claims the auth middleware
// stored on the request. ok is false for guests.
func FromCtx(c *fiber.Ctx) (User, bool) {
	tok, okTok := c.Locals("user").(*jwt.Token)
	if !okTok {
		return User{}, false
	}
	claims, okClaims := tok.Claims.(jwt.MapClaims)
	if !okClaims {
		return User{}, false
	}

	u := User{
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
		Role:  stringClaim(claims, "role"),
	}
	switch id := claims["user_id"].(type) {
	case float64:
		u.ID = strconv.Itoa(int(id))
	case string:
		u.ID = id
	}
	if u.ID == "" {
		return User{}, false
	}
	return u, true
}

// ID names the storefront session that owns the cart and order slots: the
// signed-in user's id, else the client-supplied X-Session-Id header, else
// the shared anonymous session. Guest checkout stays valid either way.
func ID(c *fiber.Ctx) string {
	if u, ok := FromCtx(c); ok {
		return u.ID
	}
	return c.Get("X-Session-Id")
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
