package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"pointswise/docs"
	"pointswise/internal/api/handlers"
	"pointswise/pkg/middleware"
)

func SetupRouter(
	compareHandler *handlers.CompareHandler,
	partnerHandler *handlers.PartnerHandler,
	limiter *middleware.RateLimiter,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(fiberlogger.New())
	app.Use(middleware.RateLimit(limiter, appLogger))

	// Importing the docs package registers the swagger document via init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	v1.Post("/compare", compareHandler.Compare)
	v1.Get("/partners", partnerHandler.ListPartners)
	v1.Get("/partners/:id", partnerHandler.GetPartner)

	return app
}
