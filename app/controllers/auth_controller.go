package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/constants"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/hcaptcha"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/session"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

var authClient *trafeek.Client

// InitializeAuthController wires the backend client the login flow exchanges
// credentials against.
func InitializeAuthController(client *trafeek.Client) {
	authClient = client
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return handleLoginSubmit(c)
	}

	if isLoggedIn(c) {
		return c.Redirect(constants.AdminRoute, fiber.StatusSeeOther)
	}

	return render(c, "auth/login", "Sign in", fiber.Map{
		"HCaptchaSitekey": env.GetEnv("HCAPTCHA_SITEKEY", ""),
	})
}

func handleLoginSubmit(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	form := loginForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := validator.New().Struct(form); err != nil {
		fm["message"] = "Please enter your email address and password"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	// Captcha only when both sides of the pair are configured
	if env.GetEnv("HCAPTCHA_SITEKEY", "") != "" && env.GetEnv("HCAPTCHA_SECRET", "") != "" {
		valid, err := hcaptcha.Verify(c.FormValue("h-captcha-response"))
		if err != nil || !valid {
			errorMsg := "Captcha validation failed. Please try again."
			if err != nil && env.IsDev() {
				errorMsg = fmt.Sprintf("Captcha validation failed: %v", err)
			}
			fm["message"] = errorMsg

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}
	}

	// notice: do not tell the caller which part of the login failed
	result, err := authClient.Login(c.Context(), form.Email, form.Password)
	if err != nil {
		log.Printf("login rejected for %s: %v", form.Email, err)
		fm["message"] = "There is a problem with the login process"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	// A valid account without the admin role gets no session; the token is
	// dropped right here and never stored anywhere.
	if !result.User.IsAdmin() {
		log.Printf("login refused for %s: account is not an admin", form.Email)
		fm["message"] = "This account has no dashboard access"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	sess.Set(admincontext.AuthKey, true)
	sess.Set(admincontext.KeyAdminID, result.User.ID)
	sess.Set(admincontext.KeyAdminEmail, result.User.Email)
	sess.Set(admincontext.KeyAdminName, result.User.Name)
	sess.Set(admincontext.KeySubRole, result.User.SubRole)
	sess.Set(admincontext.KeyToken, result.Token)
	sess.Set(admincontext.KeyValidatedAt, strconv.FormatInt(time.Now().Unix(), 10))

	if err := sess.Save(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	if exp, ok := trafeek.TokenExpiry(result.Token); ok {
		lifetime := env.GetEnvDuration("SESSION_LIFETIME_HOURS", time.Hour, 8*time.Hour)
		if time.Until(exp) < lifetime {
			log.Printf("backend token for %s expires %s, before the session would end", result.User.Email, exp.Format(time.RFC3339))
		}
	}

	fm = fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Welcome back, %s!", result.User.DisplayName()),
	}

	return flash.WithSuccess(c, fm).Redirect(constants.AdminRoute)
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	if err := session.Destroy(c); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	c.Locals(admincontext.KeyFromProtected, false)

	fm = fiber.Map{
		"type":    "success",
		"message": "You are logged out. See you!",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
}
