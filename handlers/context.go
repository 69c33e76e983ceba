package handlers

import (
	"storefront/cache"
	"storefront/config"
	"storefront/search"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandlerContext holds dependencies needed by handlers
type HandlerContext struct {
	Store  *store.Store
	Search *search.ProductIndex
	Cache  *cache.Cache
	Config *config.Config
	Logger *zap.Logger
}

const contextKey = "handler_context"

// SetContext stores the HandlerContext in the Fiber context
func SetContext(c *fiber.Ctx, ctx *HandlerContext) {
	c.Locals(contextKey, ctx)
}

// GetContext retrieves the HandlerContext from the Fiber context
func GetContext(c *fiber.Ctx) *HandlerContext {
	return c.Locals(contextKey).(*HandlerContext)
}
