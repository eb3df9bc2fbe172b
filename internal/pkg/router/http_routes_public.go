package router

import (
	"github.com/Bryanx275/trafeek-admin/app/controllers"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes moved to ApiRouter (internal/pkg/router/api_router.go)

	// Auth
	app.Get("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}
