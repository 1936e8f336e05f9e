package bootstrap

import (
	"context"
	"os"

	"chat-workspace-be/internal/config"
	"chat-workspace-be/internal/controller"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/pkg/session"
	"chat-workspace-be/internal/repository/memory"
	"chat-workspace-be/internal/repository/unitofwork"
	"chat-workspace-be/internal/service"
	"chat-workspace-be/pkg/github"
	"chat-workspace-be/pkg/kvstore"
	pkgNats "chat-workspace-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	ChatController   controller.IChatController
	SharedController controller.ISharedController
	UserController   controller.IUserController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Session middleware dependency
	SessionStore *session.Store

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
	}

	sessionStore := session.NewStore(rdb, cfg.Session.TTL)
	selectionStore := kvstore.NewStore(rdb, cfg.Cache.SelectionTTL)
	collectionsCache := memory.NewCollectionsCache(cfg.Cache.CollectionsTTL)

	// GitHub App client for the import flow
	var githubClient *github.Client
	if cfg.Github.AppId != "" && cfg.Github.PrivateKeyPath != "" {
		pem, err := os.ReadFile(cfg.Github.PrivateKeyPath)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to read GitHub App private key", map[string]interface{}{"error": err.Error()})
		} else if githubClient, err = github.NewClient(cfg.Github.AppId, pem); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to initialize GitHub App client", map[string]interface{}{"error": err.Error()})
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.InvalidationTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.InvalidationTopic,
		collectionsCache,
		sysLogger,
	)

	authService := service.NewAuthService(sessionStore)
	chatService := service.NewChatService(uowFactory, natsPub, sysLogger)
	templateService := service.NewTemplateService(uowFactory, publisherService, collectionsCache, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, sessionStore, selectionStore, natsPub, sysLogger)
	importService := service.NewImportService(uowFactory, githubClient)

	// 4. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		ChatController:   controller.NewChatController(chatService),
		SharedController: controller.NewSharedController(templateService, chatService),
		UserController:   controller.NewUserController(userService, templateService, importService),
		HealthController: controller.NewHealthController(),

		ConsumerService: consumerService,
		SessionStore:    sessionStore,
		Logger:          sysLogger,
	}
}
