package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/legalpro-backend/internal/handlers/http"
	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/config"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/i18n"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/logging"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/storage"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/token"
	"github.com/rafabene/legalpro-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting legalpro backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// File store em disco
	fileStore, err := storage.NewDiskStore(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("failed to initialize file store", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	lawyerRepo := postgres.NewLawyerRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	consultationRepo := postgres.NewConsultationRepository(db)
	attachmentRepo := postgres.NewAttachmentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	tokenManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	authzService := services.NewAuthorizationService(lawyerRepo)
	authService := services.NewAuthService(userRepo, lawyerRepo, tokenManager, logger)
	adminService := services.NewAdminService(userRepo, lawyerRepo, authzService, uow, logger)
	businessService := services.NewBusinessService(businessRepo, userRepo, authzService, uow, logger)
	consultationService := services.NewConsultationService(consultationRepo, businessRepo, authzService, uow, logger)
	attachmentService := services.NewAttachmentService(
		attachmentRepo, businessRepo, consultationRepo,
		fileStore, authzService, logger, cfg.Storage.MaxFileSize,
	)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	adminHandler := httphandlers.NewAdminHandler(adminService)
	businessHandler := httphandlers.NewBusinessHandler(businessService)
	consultationHandler := httphandlers.NewConsultationHandler(consultationService)
	attachmentHandler := httphandlers.NewAttachmentHandler(attachmentService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware CORS
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Middlewares de autenticação e i18n são aplicados pelo router
	authMiddleware := middleware.NewAuthMiddleware(tokenManager)
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)

	httphandlers.SetupRoutes(
		router,
		authHandler,
		adminHandler,
		businessHandler,
		consultationHandler,
		attachmentHandler,
		authMiddleware,
		i18nMiddleware,
	)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// corsConfig monta a configuração de CORS a partir da lista de origens
// separada por vírgulas; "*" libera todas as origens.
func corsConfig(allowedOrigins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "Accept-Language")
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

	if allowedOrigins == "" || allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}
