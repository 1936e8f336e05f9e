package controller

import (
	"github.com/gofiber/fiber/v2"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth ...fiber.Handler)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	GetFiles(ctx *fiber.Ctx) error
	GetShare(ctx *fiber.Ctx) error
	CreateShare(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth ...fiber.Handler) {
	h := r.Group("/users/:user_id/chats")
	for _, m := range auth {
		h.Use(m)
	}
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get(":chat_id/messages", c.GetMessages)
	h.Get(":chat_id/files", c.GetFiles)
	h.Get(":chat_id/shares", c.GetShare)
	h.Post(":chat_id/shares", c.CreateShare)
	h.Delete(":chat_id", c.Delete)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseUserPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	var req dto.CreateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Create(ctx.Context(), path.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create chat", res))
}

func (c *chatController) GetAll(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseUserPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.chatService.GetAll(ctx.Context(), path.UserId, ctx.Query("order"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chats", res))
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseChatPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.chatService.GetMessages(ctx.Context(), path.UserId, path.ChatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat messages", res))
}

func (c *chatController) GetFiles(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseChatPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.chatService.GetFiles(ctx.Context(), path.UserId, path.ChatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat files", res))
}

func (c *chatController) GetShare(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseChatPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	// res is null when the conversation has no share token.
	res, err := c.chatService.GetShare(ctx.Context(), path.UserId, path.ChatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat share", res))
}

func (c *chatController) CreateShare(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseChatPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.chatService.CreateShare(ctx.Context(), path.UserId, path.ChatId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create chat share", res))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseChatPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.chatService.Delete(ctx.Context(), path.UserId, path.ChatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete chat", res))
}
