package menu

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/menu", h.getMenu)
	app.Get("/api/v1/menu/categories", h.getCategories)
	app.Get("/api/v1/menu/:id<[0-9]+>", h.getItem)
}

// getMenu lists customer-orderable items, optionally filtered by
// ?category=. Unavailable items are hidden here; the admin surface reads
// the repository directly.
func (h *Handler) getMenu(c *fiber.Ctx) error {
	var items []Item
	var err error
	if cat := c.Query("category"); cat != "" {
		items, err = h.service.ListByCategory(cat)
	} else {
		items, err = h.service.List()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(Available(items))
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	cats, err := h.service.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cats)
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	item, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(item)
}
