package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/ai"
	"jusgestor-backend-go/internal/api"
	"jusgestor-backend-go/internal/config"
	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/mailer"
	"jusgestor-backend-go/internal/middleware"
	"jusgestor-backend-go/internal/realtime"
	"jusgestor-backend-go/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.InitClients(initCtx, cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()

	// Redis is optional: without it identities are resolved from
	// Firestore on every request.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(initCtx).Err(); err != nil {
			zapLogger.Warn("redis unreachable, identity caching disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	officeRepo := db.NewFirestoreOfficeRepository(clients.Firestore)
	clientRepo := db.NewFirestoreClientRepository(clients.Firestore)
	processRepo := db.NewFirestoreProcessRepository(clients.Firestore)
	eventRepo := db.NewFirestoreEventRepository(clients.Firestore)
	financialRepo := db.NewFirestoreFinancialRepository(clients.Firestore)
	templateRepo := db.NewFirestoreTemplateRepository(clients.Firestore)
	contactRepo := db.NewFirestoreContactRepository(clients.Firestore)

	authProvider := db.NewFirebaseAuthProvider(clients.Auth)
	uploader := storage.NewBucketUploader(clients.Bucket, cfg.StorageBucket)
	resolver := core.NewIdentityResolver(userRepo, redisClient, zapLogger)

	var inviteMailer core.InviteMailer
	if cfg.SendgridAPIKey != "" && cfg.InviteFromEmail != "" {
		inviteMailer = mailer.NewSendgridMailer(cfg.SendgridAPIKey, cfg.InviteFromEmail)
	} else {
		zapLogger.Warn("sendgrid not configured, invite emails disabled")
	}

	aiRegistry := ai.NewRegistry()
	defer aiRegistry.Close()
	generator := ai.NewGeminiGenerator(aiRegistry, cfg.GeminiModel)

	svc := api.Services{
		Accounts:  core.NewAccountService(userRepo, officeRepo, authProvider, uploader, resolver, zapLogger),
		Team:      core.NewTeamService(userRepo, officeRepo, authProvider, inviteMailer, resolver, zapLogger),
		Offices:   core.NewOfficeService(officeRepo, resolver),
		Clients:   core.NewClientService(clientRepo, resolver),
		Processes: core.NewProcessService(processRepo, clientRepo, userRepo, uploader, resolver),
		Events:    core.NewEventService(eventRepo, userRepo, resolver),
		Finances:  core.NewFinancialService(financialRepo, resolver),
		Templates: core.NewTemplateService(templateRepo, resolver),
		Contacts:  core.NewContactService(contactRepo, officeRepo, resolver),
		AI:        core.NewAIService(officeRepo, processRepo, generator, resolver, cfg.GeminiAPIKey),
		Resolver:  resolver,
		Watcher:   realtime.NewWatcher(clients.Firestore, zapLogger),
	}

	if strings.ToLower(cfg.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(cfg))

	api.SetupRoutes(router, cfg, zapLogger, clients.Auth, svc)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", httpServer.Addr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
