package reports

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type stubRepository struct{}

func (stubRepository) Summary() (Summary, error) {
	return Summary{TotalOrders: 1, Revenue: 100, StatusCounts: map[string]int{"received": 1}}, nil
}
func (stubRepository) TopItems(int) ([]TopItem, error)          { return []TopItem{}, nil }
func (stubRepository) RevenueByDay(int) ([]DailyRevenue, error) { return []DailyRevenue{}, nil }

func makeApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-User-Role"); role != "" {
			claims := jwt.MapClaims{"user_id": "1", "role": role}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	NewHandler(stubRepository{}).RegisterAdminRoutes(app)
	return app
}

func TestReportsAreAdminOnly(t *testing.T) {
	app := makeApp()

	for _, path := range []string{
		"/api/v1/admin/reports/summary",
		"/api/v1/admin/reports/top-items",
		"/api/v1/admin/reports/revenue",
	} {
		res, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: expected 401 for guest, got %d", path, res.StatusCode)
		}

		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set("X-User-Role", "customer")
		res, err = app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusForbidden {
			t.Errorf("%s: expected 403 for customer, got %d", path, res.StatusCode)
		}

		req = httptest.NewRequest("GET", path, nil)
		req.Header.Set("X-User-Role", "Admin")
		res, err = app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Errorf("%s: expected 200 for admin, got %d", path, res.StatusCode)
		}
	}
}
