package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Oopsie handles GET /oopsie: a deliberate failure for exercising error
// reporting in the tracing pipeline
func Oopsie(c *fiber.Ctx) error {
	ctx := GetContext(c)
	ctx.Logger.Error("About to blow up!")
	return fiber.NewError(fiber.StatusInternalServerError, "about to blow up!")
}
