package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.LogCycle)
	cycles.Get("/statistics", handler.GetStatistics)
	cycles.Get("/dashboard", handler.GetDashboard)
	cycles.Post("/predict", handler.PredictNextPeriod)
	cycles.Patch("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	api.Get("/streak", handler.AuthRequired, handler.GetStreak)
}
