package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"site-backend/internal/models"
)

type ReviewStore interface {
	Insert(ctx context.Context, r *models.Review) error
	ListNewestFirst(ctx context.Context) ([]models.Review, error)
}

type ReviewHandler struct {
	store ReviewStore
}

func NewReviewHandler(store ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

// POST /api/reviews
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var rev models.Review
	if err := c.BodyParser(&rev); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit review"})
	}
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Insert(ctx, &rev); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit review"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review submitted successfully"})
}

// GET /api/reviews
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.store.ListNewestFirst(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}
	if reviews == nil {
		// an empty list is always the JSON array [], never null
		reviews = []models.Review{}
	}
	return c.JSON(reviews)
}
