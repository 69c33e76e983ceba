package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RUMConfig handles GET /rum_config.js: a small script exposing the RUM
// agent settings as browser globals
func RUMConfig(c *fiber.Ctx) error {
	ctx := GetContext(c)
	cfg := ctx.Config

	serviceName := cfg.RUMServiceName
	if serviceName == "" {
		serviceName = cfg.ServiceName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "window.rumServerUrl = %q;\n", cfg.RUMServerURL)
	fmt.Fprintf(&b, "window.rumServiceName = %q;\n", serviceName)
	fmt.Fprintf(&b, "window.rumServiceVersion = %q;\n", cfg.RUMServiceVersion)

	c.Set(fiber.HeaderContentType, "text/javascript")
	return c.SendString(b.String())
}
