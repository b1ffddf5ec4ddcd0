package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bazaar/internal/config"
	"bazaar/internal/http/handlers"
	applog "bazaar/internal/log"
	"bazaar/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
		},
	})
	// Upload ceiling plus form slack
	app.Server().MaxRequestBodySize = 6 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization",
	}))

	// ---------- Static uploads ----------
	uploadDir := cfg.UploadDir
	if !filepath.IsAbs(uploadDir) {
		if abs, err := filepath.Abs(uploadDir); err == nil {
			uploadDir = abs
		}
	}
	log.Printf("[static] /uploads -> %s", uploadDir)
	app.Static("/uploads", uploadDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)
	requireAuth := handlers.RequireAuth(deps.Tokens)
	optionalAuth := handlers.OptionalAuth(deps.Tokens)
	requireAdmin := handlers.RequireAdmin()

	// Users
	users := app.Group("/api/users")
	users.Post("/register", deps.UserHandler.Register)
	users.Post("/login", deps.UserHandler.Login)
	users.Get("/me", requireAuth, deps.UserHandler.Me)
	users.Patch("/me", requireAuth, deps.UserHandler.UpdateMe)
	users.Get("/", requireAuth, requireAdmin, deps.UserHandler.List)
	users.Get("/:id", requireAuth, requireAdmin, deps.UserHandler.Get)
	users.Patch("/:id", requireAuth, requireAdmin, deps.UserHandler.Patch)
	users.Patch("/:id/block", requireAuth, requireAdmin, deps.UserHandler.Block)
	users.Patch("/:id/unblock", requireAuth, requireAdmin, deps.UserHandler.Unblock)
	users.Delete("/:id", requireAuth, requireAdmin, deps.UserHandler.Delete)

	// Products
	products := app.Group("/api/products")
	products.Get("/", optionalAuth, deps.ProductHandler.List)
	products.Post("/", requireAuth, deps.ProductHandler.Create)
	products.Get("/pending", requireAuth, requireAdmin, deps.ProductHandler.Pending)
	products.Get("/:id", deps.ProductHandler.Get)
	products.Patch("/:id", requireAuth, requireAdmin, deps.ProductHandler.PatchStock)
	products.Patch("/:id/status", requireAuth, requireAdmin, deps.ProductHandler.PatchStatus)
	products.Delete("/:id", requireAuth, deps.ProductHandler.Delete)
	products.Get("/:id/reviews", deps.ReviewHandler.List)
	products.Post("/:id/reviews", requireAuth, deps.ReviewHandler.Create)
	products.Get("/:id/recommend", deps.ProductHandler.Recommend)

	// Orders
	orders := app.Group("/api/orders")
	orders.Post("/", optionalAuth, deps.OrderHandler.Create)
	orders.Get("/:id", deps.OrderHandler.Get)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
