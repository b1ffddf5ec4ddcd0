package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bazaar/internal/domain"
	applog "bazaar/internal/log"
	"bazaar/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type orderReq struct {
	Products     []domain.OrderItem `json:"products"`
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
}

// Create accepts an order submission. Authentication is optional; when a
// valid token is present the buyer id is attached as a weak reference.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req orderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid required fields"})
	}

	var claims *domain.Claims
	if cl, ok := ClaimsFrom(c); ok {
		claims = &cl
	}

	o, err := h.Orders.Place(claims, domain.Order{
		Items:        req.Products,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	switch {
	case errors.Is(err, services.ErrOrderFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid required fields"})
	case errors.Is(err, services.ErrOrderEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	case errors.Is(err, services.ErrOrderPhone):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid phone number format"})
	case err != nil:
		applog.Error(c, "orders.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Order could not be saved"})
	}
	applog.Audit(c, "orders.create", map[string]any{"order": o.ID, "items": len(o.Items)})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order saved successfully", "order": o})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	o, err := h.Orders.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		applog.Error(c, "orders.get.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch order"})
	}
	return c.JSON(o)
}
