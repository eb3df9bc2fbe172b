package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout carries the frame data every rendered page shares.
type Layout struct {
	Page          string
	FromProtected bool
	Msg           fiber.Map
	AdminName     string
	AdminEmail    string
	IsSuperAdmin  bool
	CSRFToken     string
}
