package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"site-backend/internal/storage"
)

type UploadHandler struct {
	store *storage.DiskStore
}

func NewUploadHandler(store *storage.DiskStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// POST /api/upload (multipart/form-data; the "video" field routes to the
// video directory, any other field to the upload directory)
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	field, fh := firstFile(c)
	if fh == nil {
		// no file attached; the ack is unconditional either way
		return c.JSON(fiber.Map{"message": "File uploaded successfully"})
	}

	if err := c.SaveFile(fh, h.store.DestPath(field, fh.Filename)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file"})
	}
	return c.JSON(fiber.Map{"message": "File uploaded successfully"})
}

// firstFile picks the single file to store: "video" wins, then "file",
// then whatever other field carried one.
func firstFile(c *fiber.Ctx) (string, *multipart.FileHeader) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", nil
	}
	for _, name := range []string{"video", "file"} {
		if fhs := form.File[name]; len(fhs) > 0 {
			return name, fhs[0]
		}
	}
	for name, fhs := range form.File {
		if len(fhs) > 0 {
			return name, fhs[0]
		}
	}
	return "", nil
}
