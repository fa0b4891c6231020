package handlers

import (
	"github.com/gofiber/fiber/v2"

	"site-backend/internal/storage"
)

type VideoHandler struct {
	store *storage.DiskStore
}

func NewVideoHandler(store *storage.DiskStore) *VideoHandler {
	return &VideoHandler{store: store}
}

// GET /api/videos
func (h *VideoHandler) List(c *fiber.Ctx) error {
	videos, err := h.store.ListVideos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch videos"})
	}
	return c.JSON(videos)
}
