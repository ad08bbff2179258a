package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/restosuite/storefront-backend/internal/session"
)

// makeApp wires the handler behind a bootstrap middleware that injects a
// jwt.Token into locals when X-User-ID is provided. This avoids pulling
// in the full jwtware middleware and keeps tests lightweight.
func makeApp(repo Repository) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				role := c.Get("X-User-Role")
				claims := jwt.MapClaims{"user_id": float64(id), "role": role}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h := NewHandler(NewService(repo))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) ([]byte, int) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(res.Body)
	return b, res.StatusCode
}

func TestSignUpAndSignIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := makeApp(NewInMemoryRepository(nil))

	body, code := doJSON(t, app, "POST", "/api/v1/sign-up",
		`{"email":"maria@example.com","password":"secret","name":"Maria","phoneNumber":"0917"}`, nil)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}
	var created User
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatal(err)
	}
	if created.Role != session.RoleCustomer {
		t.Errorf("new accounts must be customers, got %q", created.Role)
	}
	if created.Password != "" {
		t.Error("password must not be echoed back")
	}

	// duplicate email
	_, code = doJSON(t, app, "POST", "/api/v1/sign-up",
		`{"email":"maria@example.com","password":"other","name":"Maria"}`, nil)
	if code != fiber.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", code)
	}

	// wrong password
	_, code = doJSON(t, app, "POST", "/api/v1/sign-in",
		`{"email":"maria@example.com","password":"wrong"}`, nil)
	if code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", code)
	}

	body, code = doJSON(t, app, "POST", "/api/v1/sign-in",
		`{"email":"maria@example.com","password":"secret"}`, nil)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}
	var login struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.Unmarshal(body, &login); err != nil {
		t.Fatal(err)
	}
	if login.Token == "" {
		t.Error("sign-in must return a token")
	}

	tok, err := jwt.Parse(login.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != session.RoleCustomer || claims["email"] != "maria@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestRegisterIgnoresRequestedRole(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	created, err := svc.Register(User{Email: "x@example.com", Password: "pw", Name: "X", Role: "ADMIN"})
	if err != nil {
		t.Fatal(err)
	}
	if created.Role != session.RoleCustomer {
		t.Errorf("registration must not grant %q", created.Role)
	}
}

func TestSessionUserMapping(t *testing.T) {
	pic := "/avatars/5.png"
	u := User{ID: 5, Name: "Boss", Email: "b@example.com", Role: "admin", Phone: "0917", AvatarPic: &pic}

	s := u.SessionUser()
	if s.ID != "5" || s.Avatar != pic {
		t.Errorf("unexpected session user %+v", s)
	}
	if !s.IsAdmin() {
		t.Error("role comparison must be case-insensitive")
	}
}

func TestProfileRoutes(t *testing.T) {
	seed := []User{{ID: 7, Email: "j@example.com", Name: "Jenny", Phone: "123", Role: session.RoleCustomer}}
	app := makeApp(NewInMemoryRepository(seed))

	_, code := doJSON(t, app, "GET", "/api/v1/profile", "", nil)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", code)
	}

	auth := map[string]string{"X-User-ID": "7"}
	body, code := doJSON(t, app, "GET", "/api/v1/profile", "", auth)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(string(body), "j@example.com") {
		t.Errorf("profile body missing email: %s", body)
	}
	if strings.Contains(string(body), "password") {
		t.Error("profile must not expose the password field")
	}

	for _, method := range []string{"PUT", "PATCH"} {
		body, code = doJSON(t, app, method, "/api/v1/profile", `{"name":"Jen","phoneNumber":"999"}`, auth)
		if code != fiber.StatusOK {
			t.Fatalf("%s update: expected 200, got %d", method, code)
		}
		if !strings.Contains(string(body), "Jen") {
			t.Errorf("%s update response missing new name: %s", method, body)
		}
	}
}

func TestAdminUserRoutes(t *testing.T) {
	seed := []User{
		{ID: 1, Email: "boss@example.com", Name: "Boss", Role: session.RoleAdmin},
		{ID: 2, Email: "c@example.com", Name: "Cust", Role: session.RoleCustomer},
	}
	app := makeApp(NewInMemoryRepository(seed))

	_, code := doJSON(t, app, "GET", "/api/v1/admin/users", "", nil)
	if code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for guest, got %d", code)
	}

	customer := map[string]string{"X-User-ID": "2", "X-User-Role": "customer"}
	_, code = doJSON(t, app, "GET", "/api/v1/admin/users", "", customer)
	if code != fiber.StatusForbidden {
		t.Errorf("expected 403 for customer, got %d", code)
	}

	admin := map[string]string{"X-User-ID": "1", "X-User-Role": "admin"}
	body, code := doJSON(t, app, "GET", "/api/v1/admin/users", "", admin)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", code)
	}
	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}

	_, code = doJSON(t, app, "DELETE", "/api/v1/admin/users/2", "", admin)
	if code != fiber.StatusOK {
		t.Errorf("expected 200 on delete, got %d", code)
	}
	_, code = doJSON(t, app, "DELETE", "/api/v1/admin/users/2", "", admin)
	if code != fiber.StatusNotFound {
		t.Errorf("expected 404 on repeated delete, got %d", code)
	}
}
