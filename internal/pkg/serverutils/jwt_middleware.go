package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return NewApiError(fiber.StatusUnauthorized, "Missing token")
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return NewApiError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return NewApiError(fiber.StatusUnauthorized, "Invalid claims")
	}

	// Numeric JSON claims decode as float64
	uid, ok := claims["user_id"].(float64)
	if !ok || uid < 0 {
		return NewApiError(fiber.StatusUnauthorized, "Invalid claims")
	}
	ctx.Locals("user_id", uint(uid))

	if sid, ok := claims["session_id"].(string); ok && sid != "" {
		ctx.Locals("session_id", sid)
	}

	return ctx.Next()
}

// CurrentUserId reads the authenticated user id the middleware stored.
func CurrentUserId(ctx *fiber.Ctx) uint {
	if uid, ok := ctx.Locals("user_id").(uint); ok {
		return uid
	}
	return 0
}

// CurrentSessionId reads the session id claim, empty when absent.
func CurrentSessionId(ctx *fiber.Ctx) string {
	if sid, ok := ctx.Locals("session_id").(string); ok {
		return sid
	}
	return ""
}
