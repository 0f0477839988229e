// @title Ashi's Remedies API
// @version 1.0
// @description Remedy catalog, dosha quiz, Veda Lab, body map, community and admin API of Ashi's Remedies.
// @contact.name Ashi's Remedies
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ashi-remedies/internal/adapter"
	"ashi-remedies/internal/adapter/chat"
	"ashi-remedies/internal/cache"
	"ashi-remedies/internal/config"
	"ashi-remedies/internal/content"
	"ashi-remedies/internal/database"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/handler"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/metrics"
	"ashi-remedies/internal/middleware"
	"ashi-remedies/internal/repository"
	"ashi-remedies/internal/service"

	_ "ashi-remedies/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// backends holds the storage chosen by store.driver.
type backends struct {
	store   domain.ContentStore
	cache   domain.Cache
	tx      domain.TransactionManager
	closers []io.Closer
}

func (b *backends) Close() {
	for _, c := range b.closers {
		if err := c.Close(); err != nil {
			logger.Get().Warn("Failed to close backend", zap.Error(err))
		}
	}
}

func openBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	appLogger := logger.Get()
	b := &backends{tx: repository.NoopTransactionManager{}}

	// Sessions and chat replies go to Redis whenever it is configured.
	if cfg.Store.Driver == "redis" || (cfg.Store.Driver == "oracle" && cfg.Redis.Address != "") {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		appLogger.Info("Successfully connected to Redis")
		b.closers = append(b.closers, redisClient)
		b.cache = adapter.NewRedisCacheAdapter(redisClient)
		if cfg.Store.Driver == "redis" {
			b.store = adapter.NewRedisContentStore(redisClient)
		}
	}

	switch cfg.Store.Driver {
	case "oracle":
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, db)
		b.store = repository.NewSQLContentStore(db)
		b.tx = repository.NewTransactionManagerAdapter(db)
	case "memory":
		mem := adapter.NewMemoryStore()
		b.store = mem
		b.cache = mem.Cache()
	}
	if b.cache == nil {
		b.cache = adapter.NewMemoryStore().Cache()
	}
	return b, nil
}

func newChatResponder(cfg config.ChatConfig) (domain.ChatResponder, error) {
	if cfg.Backend != "ollama" {
		return chat.NewCannedResponder(), nil
	}
	ollamaHTTPClient := &http.Client{Timeout: cfg.Timeout}
	llm, err := ollama.New(ollama.WithServerURL(cfg.ServerURL), ollama.WithModel(cfg.Model), ollama.WithHTTPClient(ollamaHTTPClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return chat.NewLLMResponder(llm, cfg.Timeout), nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	b, err := openBackends(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to open storage", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer b.Close()
	appLogger.Info("Storage initialized", zap.String("driver", cfg.Store.Driver))

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		appLogger.Fatal("Failed to register metrics", zap.Error(err))
	}

	// Content snapshot
	loader := content.NewLoader(b.store)
	start := time.Now()
	_, err = loader.Reload(ctx)
	recorder.RecordContentReload(time.Since(start), err)
	if err != nil {
		appLogger.Fatal("Failed to load content", zap.Error(err))
	}

	// Initialize services
	catalogService, err := service.NewCatalogService(loader, cfg.Catalog.SearchCacheSize, recorder)
	if err != nil {
		appLogger.Fatal("Failed to create CatalogService", zap.Error(err))
	}
	sessionStore := service.NewQuizSessionStore(b.cache, cfg.Quiz.SessionTTL)
	quizService := service.NewQuizService(loader, sessionStore, cfg.Quiz.SessionTTL, recorder)
	labService := service.NewLabService(loader, cfg.Lab.MaxSelection, recorder)
	bodyMapService := service.NewBodyMapService(loader)
	communityService := service.NewCommunityService(b.store, b.tx)

	adminService, err := service.NewAdminService(b.store, loader, cfg.Admin, recorder)
	if err != nil {
		appLogger.Fatal("Failed to create AdminService", zap.Error(err))
	}
	if cfg.Admin.PasswordHash == "" {
		appLogger.Warn("Admin password hash is not set, admin login is disabled")
	}

	responder, err := newChatResponder(cfg.Chat)
	if err != nil {
		appLogger.Fatal("Failed to create chat responder", zap.Error(err))
	}
	var replyCache service.ChatReplyCacheService
	if cfg.Chat.CacheTTL > 0 {
		replyCache = service.NewChatReplyCacheService(b.cache, cfg.Chat.CacheTTL)
	}
	chatService := service.NewChatService(responder, replyCache)
	appLogger.Info("Services initialized", zap.String("chat_backend", cfg.Chat.Backend))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(recorder))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins, AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handler.SetupRoutes(app, handler.Handlers{
		Remedy:    handler.NewRemedyHandler(catalogService),
		Quiz:      handler.NewQuizHandler(quizService),
		Lab:       handler.NewLabHandler(labService),
		BodyMap:   handler.NewBodyMapHandler(bodyMapService),
		Community: handler.NewCommunityHandler(communityService),
		Admin:     handler.NewAdminHandler(adminService, communityService),
		Chat:      handler.NewChatHandler(chatService),
		Health:    handler.NewHealthHandler(loader, b.cache),
	}, adminService)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
