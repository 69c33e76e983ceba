package handlers

import (
	goerrors "errors"
	"time"

	"storefront/cache"
	"storefront/errors"
	"storefront/models"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const statsCacheKey = "stats"
const statsCacheTTL = 60 * time.Second

// Stats handles GET /api/stats. Results are cached for 60 seconds when a
// cache is configured; cache failures degrade to a direct query.
func Stats(c *fiber.Ctx) error {
	ctx := GetContext(c)
	span := trace.SpanFromContext(c.UserContext())

	var stats models.Stats
	err := ctx.Cache.Get(c.UserContext(), statsCacheKey, &stats)
	if err == nil {
		span.SetAttributes(attribute.Bool("served_from_cache", true))
		return c.JSON(stats)
	}
	if !goerrors.Is(err, cache.ErrMiss) {
		ctx.Logger.Warn("Stats cache read failed", zap.Error(err))
	}

	fresh, err := ctx.Store.Stats(c.UserContext())
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to compute stats", err.Error())
	}

	if err := ctx.Cache.Set(c.UserContext(), statsCacheKey, fresh, statsCacheTTL); err != nil {
		ctx.Logger.Warn("Stats cache write failed", zap.Error(err))
	}

	span.SetAttributes(attribute.Bool("served_from_cache", false))
	return c.JSON(fresh)
}
