package api

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"site-backend/internal/auth"
	"site-backend/internal/config"
	"site-backend/internal/handlers"
	"site-backend/internal/storage"
)

// pages maps site routes to the static files behind them.
var pages = map[string]string{
	"/":                "index.html",
	"/services":        "services.html",
	"/gallery":         "gallery.html",
	"/reviews":         "reviews.html",
	"/contact":         "contact.html",
	"/admin-login":     "admin-login.html",
	"/admin-dashboard": "admin-dashboard.html",
	"/write-review":    "write_review.html",
}

func New(cfg *config.Config, reviews handlers.ReviewStore, consultations handlers.ConsultationStore, files *storage.DiskStore, gate *auth.Gate) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		// fiber's 4 MiB default would reject most video uploads
		BodyLimit: 256 * 1024 * 1024,
	})
	app.Use(cors.New())
	app.Use(logger.New())

	for route, file := range pages {
		path := filepath.Join(cfg.StaticDir, file)
		app.Get(route, func(c *fiber.Ctx) error {
			return c.SendFile(path)
		})
	}

	rh := handlers.NewReviewHandler(reviews)
	ch := handlers.NewConsultationHandler(consultations)
	uh := handlers.NewUploadHandler(files)
	vh := handlers.NewVideoHandler(files)
	ah := handlers.NewAdminHandler(gate)

	api := app.Group("/api")
	api.Post("/reviews", rh.Submit)
	api.Get("/reviews", rh.List)
	api.Post("/consultation", ch.Submit)
	api.Get("/consultation", ch.List)
	api.Post("/upload", uh.Upload)
	api.Get("/videos", vh.List)

	app.Post("/admin-login", ah.Login)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// read-only mounts; the directory listing is the only catalog of uploads
	app.Static("/uploads", files.UploadDir)
	app.Static("/videos", files.VideoDir)
	app.Static("/", cfg.StaticDir)

	return app
}
