package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restosuite/storefront-backend/internal/order"
	"github.com/restosuite/storefront-backend/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/checkout/quote", h.quote)
	app.Get("/api/v1/checkout/time-slots", h.timeSlots)
	app.Post("/api/v1/checkout", h.placeOrder)
}

func (h *Handler) quote(c *fiber.Ctx) error {
	typ := order.Type(c.Query("type", string(order.TypeDelivery)))
	quote, err := h.service.QuoteCart(session.ID(c), typ)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(quote)
}

func (h *Handler) timeSlots(c *fiber.Ctx) error {
	return c.JSON(TimeSlots)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.PlaceOrder(session.ID(c), *payload)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order Successfully Created",
		"quote":   result.Quote,
	})
}
