package session

import (
	"github.com/gofiber/fiber/v2"

	"chat-workspace-be/internal/pkg/logger"
)

// RefreshMiddleware slides the session window: every authenticated fetch
// re-stamps loggedInAt and extends the TTL. Runs after the JWT middleware so
// the session id is already in Locals. Refresh failures never fail the
// request.
func RefreshMiddleware(store *Store, sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if sid, ok := ctx.Locals("session_id").(string); ok && sid != "" {
			if err := store.Touch(ctx.Context(), sid); err != nil {
				sysLogger.Warn("SessionMiddleware", "Failed to refresh session", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
		return ctx.Next()
	}
}
