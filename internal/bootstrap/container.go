package bootstrap

import (
	"context"
	"log"

	"crowlands-be/internal/config"
	"crowlands-be/internal/controller"
	"crowlands-be/internal/pkg/logger"
	"crowlands-be/internal/pkg/mailer"
	"crowlands-be/internal/repository/memory"
	"crowlands-be/internal/repository/unitofwork"
	"crowlands-be/internal/service"
	"crowlands-be/pkg/imagegen"
	"crowlands-be/pkg/llm/factory"
	"crowlands-be/pkg/store"

	pktNats "crowlands-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ReferenceController    controller.IReferenceController
	AiController           controller.IAiController
	FavoriteController     controller.IFavoriteController
	GrimoireController     controller.IGrimoireController
	SubscriptionController controller.ISubscriptionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional; the publisher is nil-safe when disabled.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsEnabled {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Chat Session Store: Redis when configured, in-process otherwise.
	var sessionStore store.SessionStore
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionStore = memory.NewRedisSessionRepository(rdb)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = memory.NewSessionRepository()
		log.Printf("[INFO] Using Session Store: IN-MEMORY")
	}

	// 4. AI Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	var imageProvider imagegen.ImageProvider
	if cfg.Ai.ImagesEnabled && cfg.Keys.OpenAI != "" {
		imageProvider = imagegen.NewOpenAIImageProvider(cfg.Keys.OpenAI, cfg.Ai.ImageModel)
		log.Printf("[INFO] Using Image Provider: OPENAI (%s)", cfg.Ai.ImageModel)
	} else {
		log.Printf("[INFO] Image synthesis disabled")
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.AuditTopic,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	referenceService := service.NewReferenceService(uowFactory)
	favoriteService := service.NewFavoriteService(uowFactory)
	grimoireService := service.NewGrimoireService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory, cfg.Keys.AdminUpgradeKey, natsPub)

	aiService := service.NewAiService(
		uowFactory,
		llmProvider,
		imageProvider,
		sessionStore,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ReferenceController:    controller.NewReferenceController(referenceService),
		AiController:           controller.NewAiController(aiService, authService),
		FavoriteController:     controller.NewFavoriteController(favoriteService),
		GrimoireController:     controller.NewGrimoireController(grimoireService, authService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),

		ConsumerService: consumerService,
	}
}
