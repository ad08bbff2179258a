package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restosuite/storefront-backend/internal/session"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/reports/summary", h.getSummary)
	app.Get("/api/v1/admin/reports/top-items", h.getTopItems)
	app.Get("/api/v1/admin/reports/revenue", h.getRevenue)
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	s, err := h.repo.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(s)
}

func (h *Handler) getTopItems(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	limit := c.QueryInt("limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	items, err := h.repo.TopItems(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getRevenue(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	days := c.QueryInt("days", 30)
	if days <= 0 || days > 365 {
		days = 30
	}
	rev, err := h.repo.RevenueByDay(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(rev)
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
