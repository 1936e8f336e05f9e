package serverutils

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Identifier parsing is pure: it never touches the store, so a malformed path
// is rejected before any repository call can run.

// ParseNumericID parses a non-negative integer identifier. The field name is
// echoed in the failure so the caller knows which segment was malformed.
func ParseNumericID(field, raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, BadRequest(fmt.Sprintf("invalid %s: %q is not a non-negative integer", field, raw))
	}
	return uint(id), nil
}

// ParseUUID parses a uuid identifier (collections, share tokens).
func ParseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, BadRequest(fmt.Sprintf("invalid %s: %q is not a valid uuid", field, raw))
	}
	return id, nil
}

// RequirePathUser rejects a request whose path user differs from the
// authenticated one. The mismatch reads as 404, same as any other resource a
// caller does not own.
func RequirePathUser(ctx *fiber.Ctx, pathUserId uint) error {
	if pathUserId != CurrentUserId(ctx) {
		return NotFound("User not found")
	}
	return nil
}

// Typed identifier bundles, one per route family. Handlers never pass raw
// path values downstream.

type UserPath struct {
	UserId uint
}

func ParseUserPath(ctx *fiber.Ctx) (UserPath, error) {
	userId, err := ParseNumericID("user_id", ctx.Params("user_id"))
	if err != nil {
		return UserPath{}, err
	}
	return UserPath{UserId: userId}, nil
}

type ChatPath struct {
	UserId uint
	ChatId uint
}

func ParseChatPath(ctx *fiber.Ctx) (ChatPath, error) {
	userId, err := ParseNumericID("user_id", ctx.Params("user_id"))
	if err != nil {
		return ChatPath{}, err
	}
	chatId, err := ParseNumericID("chat_id", ctx.Params("chat_id"))
	if err != nil {
		return ChatPath{}, err
	}
	return ChatPath{UserId: userId, ChatId: chatId}, nil
}

type CollectionPath struct {
	UserId uint
	Uuid   uuid.UUID
}

func ParseCollectionPath(ctx *fiber.Ctx) (CollectionPath, error) {
	userId, err := ParseNumericID("user_id", ctx.Params("user_id"))
	if err != nil {
		return CollectionPath{}, err
	}
	collectionUuid, err := ParseUUID("uuid", ctx.Params("uuid"))
	if err != nil {
		return CollectionPath{}, err
	}
	return CollectionPath{UserId: userId, Uuid: collectionUuid}, nil
}

type TemplatePath struct {
	UserId     uint
	Uuid       uuid.UUID
	TemplateId uint
}

func ParseTemplatePath(ctx *fiber.Ctx) (TemplatePath, error) {
	collectionPath, err := ParseCollectionPath(ctx)
	if err != nil {
		return TemplatePath{}, err
	}
	templateId, err := ParseNumericID("id", ctx.Params("id"))
	if err != nil {
		return TemplatePath{}, err
	}
	return TemplatePath{
		UserId:     collectionPath.UserId,
		Uuid:       collectionPath.Uuid,
		TemplateId: templateId,
	}, nil
}

type ProjectPath struct {
	UserId    uint
	ProjectId uint
}

func ParseProjectPath(ctx *fiber.Ctx) (ProjectPath, error) {
	userId, err := ParseNumericID("user_id", ctx.Params("user_id"))
	if err != nil {
		return ProjectPath{}, err
	}
	projectId, err := ParseNumericID("project_id", ctx.Params("project_id"))
	if err != nil {
		return ProjectPath{}, err
	}
	return ProjectPath{UserId: userId, ProjectId: projectId}, nil
}
