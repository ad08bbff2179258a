package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restosuite/storefront-backend/internal/session"
)

// Handler exposes the session cart over HTTP. All responses return the full
// cart view so the client never has to re-fetch after a mutation.
type Handler struct {
	carts *Manager
}

func NewHandler(carts *Manager) *Handler {
	return &Handler{carts: carts}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:id", h.updateQty)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type cartView struct {
	Items    []LineItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal int64      `json:"subtotal"`
}

type addItemRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

type updateQtyRequest struct {
	Qty int `json:"qty"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(view(h.carts.For(session.ID(c))))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "item id is required"})
	}
	if payload.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price must be non-negative"})
	}

	store := h.carts.For(session.ID(c))
	store.AddItem(Item{ID: payload.ID, Name: payload.Name, Price: payload.Price}, payload.Qty)
	return c.Status(fiber.StatusCreated).JSON(view(store))
}

func (h *Handler) updateQty(c *fiber.Ctx) error {
	payload := new(updateQtyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	store := h.carts.For(session.ID(c))
	store.UpdateQty(c.Params("id"), payload.Qty)
	return c.JSON(view(store))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	store := h.carts.For(session.ID(c))
	store.RemoveItem(c.Params("id"))
	return c.JSON(view(store))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	store := h.carts.For(session.ID(c))
	store.Clear()
	return c.JSON(view(store))
}

func view(s *Store) cartView {
	return cartView{Items: s.Items(), Count: s.Count(), Subtotal: s.Subtotal()}
}
