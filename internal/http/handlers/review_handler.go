package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "bazaar/internal/log"
	"bazaar/internal/services"
	"bazaar/internal/validate"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	revs, err := h.Reviews.ForListing(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		applog.Error(c, "reviews.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch reviews"})
	}
	return c.JSON(revs)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	claims, _ := ClaimsFrom(c)
	var body struct {
		Comment string `json:"comment"`
		Rating  any    `json:"rating"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid rating"})
	}
	rating, ok := validate.Rating(body.Rating)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid rating"})
	}

	rev, err := h.Reviews.Add(claims, c.Params("id"), body.Comment, rating)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	case errors.Is(err, services.ErrInvalidRating):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid rating"})
	case err != nil:
		applog.Error(c, "reviews.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add review"})
	}
	applog.Audit(c, "reviews.create", map[string]any{"listing": c.Params("id"), "user": claims.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review added", "review": rev})
}
