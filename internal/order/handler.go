package order

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/restosuite/storefront-backend/internal/session"
)

// Handler exposes the session order history plus the admin order surface.
// The storefront routes go through the per-session factory; the admin
// routes work on the Postgres archive.
type Handler struct {
	orders  *Manager
	archive *PostgresArchive
}

// NewHandler creates the order handler. archive may be nil, which disables
// the admin routes' data source (they answer 503).
func NewHandler(orders *Manager, archive *PostgresArchive) *Handler {
	return &Handler{orders: orders, archive: archive}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/orders/:id", h.getOrder)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.adminListOrders)
	app.Patch("/api/v1/admin/orders/:id/status", h.adminUpdateStatus)
}

type createOrderRequest struct {
	Type Type `json:"type"`
}

// createOrder is the plain cart-page flow: snapshot and persist, no
// business validation. The checkout endpoints are the validating callers
// for the richer flow.
func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !payload.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown order type"})
	}

	ord := h.orders.For(session.ID(c)).CreateOrder(payload.Type)
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.orders.For(session.ID(c)).Orders())
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, ok := h.orders.For(session.ID(c)).Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(ord)
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) adminListOrders(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}
	orders, err := h.archive.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) adminUpdateStatus(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !payload.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown status"})
	}

	ord, err := h.archive.Get(c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	if !CanTransition(ord.Status, payload.Status) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "invalid status transition",
			"from":    ord.Status,
			"to":      payload.Status,
		})
	}

	affected, err := h.archive.UpdateStatusGuard(ord.ID, ord.Status, payload.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if affected == 0 {
		// someone else advanced the order between read and update
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "order status changed concurrently"})
	}

	ord.Status = payload.Status
	return c.JSON(ord)
}

// requireAdmin writes the rejection response itself and reports whether
// the request may proceed.
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
	if h.archive == nil {
		c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "order archive unavailable"})
		return false
	}
	return true
}
