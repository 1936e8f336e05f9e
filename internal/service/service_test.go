package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/model"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/repository/unitofwork"
)

// Each test gets its own named in-memory database; cache=shared keeps the
// pooled connections on the same instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.OAuthIdentity{},
		&model.ChatConversation{},
		&model.ChatMessage{},
		&model.ChatConversationFile{},
		&model.ChatConversationShare{},
		&model.UserTemplateCollection{},
		&model.UserTemplate{},
		&model.GithubAppInstallation{},
		&model.ProjectContext{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(openTestDB(t))
}

func seedConversation(t *testing.T, uowFactory unitofwork.RepositoryFactory, userId uint, title string) *entity.ChatConversation {
	t.Helper()
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	chat := entity.ChatConversation{
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.ChatConversationRepository().Create(ctx, &chat))
	return &chat
}

func requireApiStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*serverutils.ApiError)
	require.True(t, ok, "expected ApiError, got %T: %v", err, err)
	assert.Equal(t, status, apiErr.StatusCode)
}

func TestChatDeleteCascadesOneLevel(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewChatService(uowFactory, nil, logger.NewNop())

	chat := seedConversation(t, uowFactory, 1, "to be removed")

	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		ChatId: chat.Id, Role: entity.MessageRoleUser, Content: "hello", CreatedAt: time.Now(),
	}))
	require.NoError(t, uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		ChatId: chat.Id, Role: entity.MessageRoleAssistant, Content: "hi", CreatedAt: time.Now(),
	}))
	require.NoError(t, uow.ChatFileRepository().Create(ctx, &entity.ChatConversationFile{
		ChatId: chat.Id, Name: "notes.txt", Content: "scratch", CreatedAt: time.Now(),
	}))

	share, err := svc.CreateShare(ctx, 1, chat.Id)
	require.NoError(t, err)

	res, err := svc.Delete(ctx, 1, chat.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)

	// Dependents read back empty, not as errors.
	_, err = svc.GetMessages(ctx, 1, chat.Id)
	requireApiStatus(t, err, 404)

	shared, err := svc.GetSharedByToken(ctx, share.Uuid)
	assert.Nil(t, shared)
	requireApiStatus(t, err, 404)

	messages, err := uow.ChatMessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, messages)
	files, err := uow.ChatFileRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, files)

	// Deleting again: the row is already gone, so resolution fails first.
	_, err = svc.Delete(ctx, 1, chat.Id)
	requireApiStatus(t, err, 404)
}

func TestChatOwnershipMismatchReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewChatService(uowFactory, nil, logger.NewNop())

	chat := seedConversation(t, uowFactory, 1, "mine")

	// Foreign-owned and never-existed must be indistinguishable.
	_, foreignErr := svc.GetMessages(ctx, 2, chat.Id)
	requireApiStatus(t, foreignErr, 404)

	_, absentErr := svc.GetMessages(ctx, 2, 99999)
	requireApiStatus(t, absentErr, 404)

	assert.Equal(t, absentErr.Error(), foreignErr.Error())
}

func TestChatGetAllOrdering(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewChatService(uowFactory, nil, logger.NewNop())

	first := seedConversation(t, uowFactory, 1, "alpha")
	second := seedConversation(t, uowFactory, 1, "zulu")

	res, err := svc.GetAll(ctx, 1, "title:desc")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, second.Id, res[0].Id)
	assert.Equal(t, first.Id, res[1].Id)

	// Unknown columns are rejected, not silently dropped.
	_, err = svc.GetAll(ctx, 1, "password:asc")
	requireApiStatus(t, err, 400)

	_, err = svc.GetAll(ctx, 1, "title:sideways")
	requireApiStatus(t, err, 400)
}

func TestCreateShareIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewChatService(uowFactory, nil, logger.NewNop())

	chat := seedConversation(t, uowFactory, 1, "shared")

	first, err := svc.CreateShare(ctx, 1, chat.Id)
	require.NoError(t, err)
	second, err := svc.CreateShare(ctx, 1, chat.Id)
	require.NoError(t, err)
	assert.Equal(t, first.Uuid, second.Uuid)

	got, err := svc.GetShare(ctx, 1, chat.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.Uuid, got.Uuid)
}

func TestGetShareAbsentIsNotAnError(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewChatService(uowFactory, nil, logger.NewNop())

	chat := seedConversation(t, uowFactory, 1, "private")

	got, err := svc.GetShare(ctx, 1, chat.Id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSharedLookupNeedsNoOwner(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewChatService(uowFactory, nil, logger.NewNop())

	chat := seedConversation(t, uowFactory, 7, "public talk")

	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		ChatId: chat.Id, Role: entity.MessageRoleUser, Content: "ping", CreatedAt: time.Now(),
	}))

	share, err := svc.CreateShare(ctx, 7, chat.Id)
	require.NoError(t, err)

	// No user id anywhere in the call: the token is the credential.
	res, err := svc.GetSharedByToken(ctx, share.Uuid)
	require.NoError(t, err)
	assert.Equal(t, "public talk", res.Title)
	require.Len(t, res.ChatMessages, 1)
	assert.Equal(t, "ping", res.ChatMessages[0].Content)
}

func TestUserDeleteAccount(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := NewUserService(uowFactory, nil, nil, nil, logger.NewNop())

	require.NoError(t, db.Create(&model.User{PrimaryEmail: "a@b.c", FullName: "A"}).Error)
	var user model.User
	require.NoError(t, db.First(&user).Error)

	seedConversation(t, uowFactory, user.Id, "doomed")

	res, err := svc.DeleteAccount(ctx, user.Id, "")
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = svc.DeleteAccount(ctx, user.Id, "")
	requireApiStatus(t, err, 404)

	var chats int64
	require.NoError(t, db.Unscoped().Model(&model.ChatConversation{}).Where("user_id = ?", user.Id).Count(&chats).Error)
	assert.Zero(t, chats)
}

func TestProjectContextAbsentIs404(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewUserService(uowFactory, nil, nil, nil, logger.NewNop())

	_, err := svc.GetProjectContext(ctx, 1, 42)
	requireApiStatus(t, err, 404)
}

func TestProjectContextSaveIsAnUpsert(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewUserService(uowFactory, nil, nil, nil, logger.NewNop())

	_, err := svc.SaveProjectContext(ctx, 1, 42, &dto.SaveProjectContextRequest{
		Context: datatypes.JSON(`{"branch":"main"}`),
	})
	require.NoError(t, err)

	_, err = svc.SaveProjectContext(ctx, 1, 42, &dto.SaveProjectContextRequest{
		Context: datatypes.JSON(`{"branch":"dev"}`),
	})
	require.NoError(t, err)

	got, err := svc.GetProjectContext(ctx, 1, 42)
	require.NoError(t, err)
	assert.JSONEq(t, `{"branch":"dev"}`, string(got.Context))
}
