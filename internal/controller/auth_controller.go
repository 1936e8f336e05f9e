package controller

import (
	"github.com/gofiber/fiber/v2"

	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, auth ...fiber.Handler)
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router, auth ...fiber.Handler) {
	h := r.Group("/auth")
	for _, m := range auth {
		h.Use(m)
	}
	h.Post("/logout", c.Logout)
}

// Logout reports true when a live session was cleared, false when there was
// nothing to clear. Both are 200: logging out twice is not an error.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	res, err := c.authService.Logout(ctx.Context(), serverutils.CurrentSessionId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success logout", res.LoggedOut))
}
