package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	trackerGroup := api.Group("/tracker", handler.AuthRequired)
	trackerGroup.Get("/status", handler.TrackerStatus)
	trackerGroup.Get("/calendar", handler.TrackerCalendar)
	trackerGroup.Post("/days/:date", handler.TrackerToggleDay)
	trackerGroup.Put("/settings", handler.TrackerUpdateSettings)

	articles := api.Group("/articles")
	articles.Get("", handler.ListArticles)
	articles.Get("/:id", handler.GetArticle)
	articles.Post("/:id/chat", handler.ArticleChat)

	api.Get("/quote", handler.Quote)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
