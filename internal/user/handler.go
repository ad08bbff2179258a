package user

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/restosuite/storefront-backend/internal/session"
)

type Handler struct {
	service *Service
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phoneNumber"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.login)
	app.Post("/api/v1/sign-up", h.register)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/profile", h.getProfile)
	app.Put("/api/v1/profile", h.updateProfile)
	app.Patch("/api/v1/profile", h.updateProfile)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/users", h.getUsers)
	app.Delete("/api/v1/admin/users/:id<[0-9]+>", h.deleteUser)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"name":    u.Name,
		"role":    u.Role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    sanitizeUser(u),
		"token":   signed,
	})
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Register(User{
		Email:     payload.Email,
		Password:  payload.Password,
		Name:      payload.Name,
		Phone:     payload.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(sanitizeUser(created))
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	return c.JSON(sanitizeUser(u))
}

type profileUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phoneNumber,omitempty"`
	AvatarPic *string `json:"avatarPic,omitempty"`
}

// updateProfile accepts partial payloads, so PATCH and PUT behave the
// same. The role is never updatable here.
func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	existing, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	var payload profileUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Phone != nil {
		existing.Phone = *payload.Phone
	}
	if payload.AvatarPic != nil {
		if *payload.AvatarPic == "" {
			existing.AvatarPic = nil
		} else {
			existing.AvatarPic = payload.AvatarPic
		}
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.Update(userID, existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(sanitizeUser(updated))
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	users := h.service.List()
	response := make([]User, 0, len(users))
	for _, u := range users {
		response = append(response, sanitizeUser(u))
	}
	return c.JSON(response)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Delete(userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *Handler) requireAdmin(c *fiber.Ctx) bool {
	u, ok := session.FromCtx(c)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		return false
	}
	if !u.IsAdmin() {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		return false
	}
	return true
}

// GetUserIDFromCtx extracts the user_id claim from the JWT token the auth
// middleware stored on the request.
func GetUserIDFromCtx(c *fiber.Ctx) (int, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := claims["user_id"].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	}
	return 0, fiber.ErrUnauthorized
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
