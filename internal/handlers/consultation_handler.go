package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"site-backend/internal/models"
)

type ConsultationStore interface {
	Insert(ctx context.Context, m *models.ConsultationMessage) error
	ListNewestFirst(ctx context.Context) ([]models.ConsultationMessage, error)
}

type ConsultationHandler struct {
	store ConsultationStore
}

func NewConsultationHandler(store ConsultationStore) *ConsultationHandler {
	return &ConsultationHandler{store: store}
}

// POST /api/consultation
func (h *ConsultationHandler) Submit(c *fiber.Ctx) error {
	var msg models.ConsultationMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Insert(ctx, &msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Message sent successfully"})
}

// GET /api/consultation
func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	msgs, err := h.store.ListNewestFirst(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	if msgs == nil {
		msgs = []models.ConsultationMessage{}
	}
	return c.JSON(msgs)
}
