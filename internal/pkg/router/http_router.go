package router

import (
	"github.com/Bryanx275/trafeek-admin/app/controllers"
	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/cache"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/database"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/middleware"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/query"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/session"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// One backend client for the whole process. The repositories and the
	// session validation middleware share it.
	client := trafeek.NewClientFromEnv()
	repository.InitializeFactory(repository.Deps{
		Client: client,
		Store:  query.NewStore(cache.GetClient()),
		DB:     database.GetDB(),
	})

	// Apply AdminContext middleware globally as first middleware
	app.Use(middleware.AdminContextMiddleware(client))

	// Initialize auth controller with the shared backend client
	controllers.InitializeAuthController(client)

	// Initialize admin controller with repositories
	controllers.InitializeAdminController()

	// Initialize admin reports controller with repository
	controllers.InitializeAdminReportsController()

	// Initialize admin riders controller with repository
	controllers.InitializeAdminRidersController()

	// Initialize admin audit controller with repository
	controllers.InitializeAdminAuditController()

	// Initialize export controller with repositories
	controllers.InitializeExportController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// AdminContextMiddleware already set all admin context
	// This middleware now just passes through - no additional logic needed
	// All admin information is available via admincontext.GetAdminContext(c)
	return c.Next()
}
