package controller

import (
	"github.com/gofiber/fiber/v2"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, auth ...fiber.Handler)
	GetFiles(ctx *fiber.Ctx) error
	GetInstallations(ctx *fiber.Ctx) error
	GetInstallationRepositories(ctx *fiber.Ctx) error
	GetProjectContext(ctx *fiber.Ctx) error
	SaveProjectContext(ctx *fiber.Ctx) error
	GetSelection(ctx *fiber.Ctx) error
	UpdateSelection(ctx *fiber.Ctx) error
	ListCollections(ctx *fiber.Ctx) error
	CreateCollection(ctx *fiber.Ctx) error
	CreateTemplate(ctx *fiber.Ctx) error
	GetTemplate(ctx *fiber.Ctx) error
	DeleteTemplate(ctx *fiber.Ctx) error
	DeleteAccount(ctx *fiber.Ctx) error
}

type userController struct {
	userService     service.IUserService
	templateService service.ITemplateService
	importService   service.IImportService
}

func NewUserController(
	userService service.IUserService,
	templateService service.ITemplateService,
	importService service.IImportService,
) IUserController {
	return &userController{
		userService:     userService,
		templateService: templateService,
		importService:   importService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router, auth ...fiber.Handler) {
	h := r.Group("/users/:user_id")
	for _, m := range auth {
		h.Use(m)
	}
	h.Get("/files", c.GetFiles)
	h.Get("/installations", c.GetInstallations)
	h.Get("/installations/:id/repositories", c.GetInstallationRepositories)
	h.Get("/projects/:project_id/context", c.GetProjectContext)
	h.Put("/projects/:project_id/context", c.SaveProjectContext)
	h.Get("/selection", c.GetSelection)
	h.Put("/selection", c.UpdateSelection)
	h.Get("/collections", c.ListCollections)
	h.Post("/collections", c.CreateCollection)
	h.Post("/collections/:uuid/templates", c.CreateTemplate)
	h.Get("/collections/:uuid/templates/:id", c.GetTemplate)
	h.Delete("/collections/:uuid/templates/:id", c.DeleteTemplate)
	h.Delete("", c.DeleteAccount)
}

func (c *userController) requireUser(ctx *fiber.Ctx) (serverutils.UserPath, error) {
	path, err := serverutils.ParseUserPath(ctx)
	if err != nil {
		return serverutils.UserPath{}, err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return serverutils.UserPath{}, err
	}
	return path, nil
}

func (c *userController) GetFiles(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.GetFiles(ctx.Context(), path.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user files", res))
}

func (c *userController) GetInstallations(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.GetInstallations(ctx.Context(), path.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get installations", res))
}

func (c *userController) GetInstallationRepositories(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}
	installationId, err := serverutils.ParseNumericID("id", ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.importService.ListCandidates(ctx.Context(), path.UserId, installationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get repositories", res))
}

func (c *userController) GetProjectContext(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseProjectPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.userService.GetProjectContext(ctx.Context(), path.UserId, path.ProjectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get project context", res))
}

func (c *userController) SaveProjectContext(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseProjectPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	var req dto.SaveProjectContextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.SaveProjectContext(ctx.Context(), path.UserId, path.ProjectId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save project context", res))
}

func (c *userController) GetSelection(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.GetSelection(ctx.Context(), path.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get selection", res))
}

func (c *userController) UpdateSelection(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	res, err := c.userService.UpdateSelection(ctx.Context(), path.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update selection", res))
}

func (c *userController) ListCollections(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.templateService.ListForUser(ctx.Context(), path.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get collections", res))
}

func (c *userController) CreateCollection(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCollectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.templateService.CreateCollection(ctx.Context(), path.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create collection", res))
}

func (c *userController) CreateTemplate(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseCollectionPath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	var req dto.CreateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.templateService.CreateTemplate(ctx.Context(), path.UserId, path.Uuid, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create template", res))
}

func (c *userController) GetTemplate(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseTemplatePath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.templateService.GetTemplate(ctx.Context(), path.UserId, path.Uuid, path.TemplateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get template", res))
}

func (c *userController) DeleteTemplate(ctx *fiber.Ctx) error {
	path, err := serverutils.ParseTemplatePath(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.RequirePathUser(ctx, path.UserId); err != nil {
		return err
	}

	res, err := c.templateService.DeleteTemplate(ctx.Context(), path.UserId, path.Uuid, path.TemplateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete template", res))
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	path, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.DeleteAccount(ctx.Context(), path.UserId, serverutils.CurrentSessionId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete account", res.Success))
}
