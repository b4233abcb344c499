package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	funfansHTTP "funfans/internal/controller/http"
	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/internal/usecase"
	"funfans/pkg/config"
	"funfans/pkg/jwt"
	"funfans/pkg/logger"
	"funfans/pkg/middleware"
	"funfans/pkg/queue"
	"funfans/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "funfans/docs" // Swagger docs
)

// Run wires the repositories, use cases and handlers, starts the HTTP
// server and blocks until a shutdown signal arrives.
func Run(
	cfg *config.Config,
	log *logger.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	queueClient *queue.Client,
	storageClient *storage.Client,
) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	profileRepo := persistent.NewProfileRepository(db)
	ledgerRepo := persistent.NewLedgerRepository(db)
	contentRepo := persistent.NewContentRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	catalogRepo := persistent.NewCatalogRepository(db)
	timeoutRepo := persistent.NewTimeoutRepository(db)

	// Use cases
	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, queueClient, cfg, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, catalogRepo, ledgerRepo, log)
	withdrawalUseCase := usecase.NewWithdrawalUseCase(profileRepo, cfg, log)
	moderationUseCase := usecase.NewModerationUseCase(timeoutRepo, contentRepo, log)
	contentUseCase := usecase.NewContentUseCase(contentRepo, ledgerRepo, storageClient, redisClient, cfg, log)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, log)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, log)

	// HTTP handlers
	ledgerHandler := funfansHTTP.NewLedgerHandler(ledgerUseCase, log)
	subscriptionHandler := funfansHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	withdrawalHandler := funfansHTTP.NewWithdrawalHandler(withdrawalUseCase, log)
	moderationHandler := funfansHTTP.NewModerationHandler(moderationUseCase, log)
	contentHandler := funfansHTTP.NewContentHandler(contentUseCase, moderationUseCase, log)
	profileHandler := funfansHTTP.NewProfileHandler(profileUseCase, log)
	catalogHandler := funfansHTTP.NewCatalogHandler(catalogUseCase, log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		// Credits & ledger
		api.GET("/credits/balance", ledgerHandler.GetBalance)
		api.GET("/credits/transactions", ledgerHandler.GetTransactions)
		api.GET("/credits/sales", middleware.RequireCapability(entity.CapWithdraw), ledgerHandler.GetCreatorTransactions)
		api.GET("/credits/unlocked", ledgerHandler.GetUnlocked)
		api.POST("/credits/reward", ledgerHandler.ClaimReward)

		// Content
		api.GET("/content", contentHandler.List)
		api.POST("/content", middleware.RequireCapability(entity.CapCreateContent), contentHandler.Create)
		api.GET("/content/:item_id", contentHandler.Get)
		api.DELETE("/content/:item_id", middleware.RequireCapability(entity.CapCreateContent), contentHandler.Delete)
		api.POST("/content/:item_id/purchase", ledgerHandler.Purchase)
		api.POST("/content/:item_id/like", contentHandler.ToggleLike)
		api.POST("/content/:item_id/reaction", contentHandler.ToggleReaction)
		api.POST("/content/:item_id/share", contentHandler.Share)

		// Subscriptions & catalog
		api.GET("/subscription", subscriptionHandler.Get)
		api.POST("/subscription", subscriptionHandler.Subscribe)
		api.DELETE("/subscription", subscriptionHandler.Cancel)
		api.GET("/catalog/plans", catalogHandler.ListPlans)
		api.GET("/catalog/packages", catalogHandler.ListPackages)

		// Withdrawals
		api.GET("/withdrawals/status", middleware.RequireCapability(entity.CapWithdraw), withdrawalHandler.Status)
		api.POST("/withdrawals", middleware.RequireCapability(entity.CapWithdraw), withdrawalHandler.Process)

		// Profiles
		api.GET("/profiles", profileHandler.List)
		api.GET("/profiles/me", profileHandler.Me)
		api.PUT("/profiles/me", profileHandler.Update)
		api.GET("/profiles/:user_id", profileHandler.Get)
		api.POST("/profiles/:user_id/follow", profileHandler.Follow)
		api.DELETE("/profiles/:user_id/follow", profileHandler.Unfollow)
		api.GET("/vitrine/:slug", profileHandler.GetBySlug)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/credits/grant", middleware.RequireCapability(entity.CapGrantCredits), ledgerHandler.GrantCredits)
		admin.POST("/subscriptions/:user_id", middleware.RequireCapability(entity.CapManageUsers), subscriptionHandler.SubscribeUser)
		admin.DELETE("/subscriptions/:user_id", middleware.RequireCapability(entity.CapManageUsers), subscriptionHandler.CancelUser)
		admin.PUT("/catalog/plans/:plan_id", middleware.RequireCapability(entity.CapManageCatalog), catalogHandler.UpdatePlan)
		admin.PUT("/catalog/packages/:package_id", middleware.RequireCapability(entity.CapManageCatalog), catalogHandler.UpdatePackage)
	}

	moderation := api.Group("/moderation")
	moderation.Use(middleware.RequireCapability(entity.CapModerate))
	{
		moderation.POST("/timeouts/:user_id", moderationHandler.SetTimeout)
		moderation.GET("/timeouts/:user_id", moderationHandler.GetTimeout)
		moderation.PUT("/content/:item_id/hidden", moderationHandler.SetContentHidden)
		moderation.DELETE("/content/:item_id", moderationHandler.RemoveContent)
		moderation.PUT("/creators/:creator_id/hidden", moderationHandler.HideCreatorContent)
		moderation.DELETE("/creators/:creator_id/content", moderationHandler.RemoveCreatorContent)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("funfans API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down funfans API...")

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("funfans API exited")
}
