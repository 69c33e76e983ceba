package middleware

import (
	"fmt"

	sferrors "storefront/errors"
	"storefront/rpc"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Forwarding wraps eligible routes: per request it consults the decision
// policy and either falls through to the local handler or relays the
// request to the chosen peer via the client. A forwarding failure is
// surfaced to the caller rather than masked by local handling.
func Forwarding(policy *rpc.Policy, client rpc.PeerClient, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := policy.Decide(c.Method())
		if !decision.Forward {
			return c.Next()
		}

		span := trace.SpanFromContext(c.UserContext())
		span.SetAttributes(
			attribute.Bool("forwarding.forwarded", true),
			attribute.String("forwarding.peer", string(decision.Peer)),
			attribute.Float64("forwarding.roll", decision.Roll),
		)

		// c.Context() is cancelled when the caller disconnects, which
		// cancels the outbound call as well.
		resp, err := client.Get(c.Context(), decision.Peer, c.Path(), string(c.Request().URI().QueryString()))
		if err != nil {
			span.RecordError(err)
			logger.Error("Forwarding failed",
				zap.Error(err),
				zap.String("peer", string(decision.Peer)),
				zap.String("path", c.Path()),
			)
			return sferrors.ServiceUnavailable(c,
				sferrors.ErrorCodePeerUnavailable,
				fmt.Sprintf("failed to forward request: %v", err),
				string(decision.Peer))
		}

		c.Set(fiber.HeaderContentType, resp.ContentType)
		return c.Status(resp.StatusCode).Send(resp.Body)
	}
}
