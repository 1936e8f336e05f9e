package controller

import (
	"github.com/gofiber/fiber/v2"

	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/service"
)

// ISharedController serves the /shared surface: the cached public
// collections listing, public shared-conversation lookup, and the owner-side
// collection and template routes addressed by token identity instead of a
// path user.
type ISharedController interface {
	RegisterRoutes(r fiber.Router, auth ...fiber.Handler)
	ListCollections(ctx *fiber.Ctx) error
	DeleteCollection(ctx *fiber.Ctx) error
	GetTemplate(ctx *fiber.Ctx) error
	DeleteTemplate(ctx *fiber.Ctx) error
	GetSharedChat(ctx *fiber.Ctx) error
}

type sharedController struct {
	templateService service.ITemplateService
	chatService     service.IChatService
}

func NewSharedController(
	templateService service.ITemplateService,
	chatService service.IChatService,
) ISharedController {
	return &sharedController{
		templateService: templateService,
		chatService:     chatService,
	}
}

func (c *sharedController) RegisterRoutes(r fiber.Router, auth ...fiber.Handler) {
	h := r.Group("/shared")

	// Public reads: a share token or nothing at all is the credential.
	h.Get("/collections", c.ListCollections)
	h.Get("/chats/:uuid", c.GetSharedChat)

	owned := h.Group("")
	for _, m := range auth {
		owned.Use(m)
	}
	owned.Delete("/collections/:uuid", c.DeleteCollection)
	owned.Get("/collections/:uuid/templates/:id", c.GetTemplate)
	owned.Delete("/collections/:uuid/templates/:id", c.DeleteTemplate)
}

func (c *sharedController) ListCollections(ctx *fiber.Ctx) error {
	res, err := c.templateService.ListShared(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get collections", res))
}

func (c *sharedController) DeleteCollection(ctx *fiber.Ctx) error {
	collectionUuid, err := serverutils.ParseUUID("uuid", ctx.Params("uuid"))
	if err != nil {
		return err
	}

	res, err := c.templateService.DeleteCollection(ctx.Context(), serverutils.CurrentUserId(ctx), collectionUuid)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete collection", res.Success))
}

func (c *sharedController) GetTemplate(ctx *fiber.Ctx) error {
	collectionUuid, err := serverutils.ParseUUID("uuid", ctx.Params("uuid"))
	if err != nil {
		return err
	}
	templateId, err := serverutils.ParseNumericID("id", ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.templateService.GetTemplate(ctx.Context(), serverutils.CurrentUserId(ctx), collectionUuid, templateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get template", res))
}

func (c *sharedController) DeleteTemplate(ctx *fiber.Ctx) error {
	collectionUuid, err := serverutils.ParseUUID("uuid", ctx.Params("uuid"))
	if err != nil {
		return err
	}
	templateId, err := serverutils.ParseNumericID("id", ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.templateService.DeleteTemplate(ctx.Context(), serverutils.CurrentUserId(ctx), collectionUuid, templateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete template", res))
}

func (c *sharedController) GetSharedChat(ctx *fiber.Ctx) error {
	token, err := serverutils.ParseUUID("uuid", ctx.Params("uuid"))
	if err != nil {
		return err
	}

	res, err := c.chatService.GetSharedByToken(ctx.Context(), token)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get shared chat", res))
}
