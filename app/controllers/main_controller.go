package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/constants"
)

// HandleStart routes the bare domain to the dashboard or the login page.
func HandleStart(c *fiber.Ctx) error {
	if isLoggedIn(c) {
		return c.Redirect(constants.AdminRoute, fiber.StatusSeeOther)
	}

	return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
}
