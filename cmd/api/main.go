package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/jayantelango/ai-driven-meeting-summarizer/pkg/validator"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/handler"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/repository"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/cache"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/database"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/export"
	httpmw "github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/notify"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/storage"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/analysis"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/analytics"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/assistant"
	authuse "github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/auth"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/meeting"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/transcription"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/workspace"
	pkgai "github.com/jayantelango/ai-driven-meeting-summarizer/pkg/ai"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Manage schema with sql-migrate instead.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; apply them with sql-migrate in CI/CD/production")
	}

	if cfg.Server.SeedData {
		if err := database.Seed(db, logger); err != nil {
			log.Fatalf("Failed to seed default data: %v", err)
		}
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Initialize the analysis engine. Without a model API key the
	// heuristic extractor handles every transcript.
	log.Println("🤖 Initializing analysis engine...")
	var model analysis.TextGenerator
	if cfg.Gemini.APIKey != "" {
		gemini, err := pkgai.NewGeminiClient(context.Background(), &cfg.Gemini, logger)
		if err != nil {
			log.Fatalf("Failed to initialize model client: %v", err)
		}
		model = gemini
		log.Printf("✅ Model client ready: %s", cfg.Gemini.Model)
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, running with the heuristic extractor only")
	}
	engine := analysis.NewEngine(model, logger)

	// Optional speech transcription for audio uploads
	transcriber := pkgai.NewTranscriber(&cfg.AssemblyAI, logger)
	transcriptionService := transcription.NewService(transcriber, logger)

	// Optional transcript archive
	var archive meeting.Archiver
	if cfg.Storage.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		archive = minioClient
		log.Printf("✅ Object storage ready: %s", cfg.Storage.Endpoint)
	} else {
		log.Println("⚠️  Object storage not configured, transcript archiving disabled")
	}

	// Optional mail alerts for high priority tasks
	mailer := notify.NewMailer(&cfg.Mail, logger)

	// Initialize JWT manager and auth
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	authService := authuse.NewService(userRepo, jwtManager, logger)

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meeting.NewService(engine, meetingRepo, projectRepo, taskRepo, templateRepo, archive, mailer, logger)
	workspaceService := workspace.NewService(projectRepo, taskRepo, memberRepo, templateRepo, logger)
	analyticsService := analytics.NewService(meetingRepo, taskRepo, projectRepo, logger)
	assistantService := assistant.NewService(model, meetingRepo, taskRepo, logger)

	// Rate limit counter, redis when available so limits hold across
	// instances, in-process memory otherwise.
	var counter httpmw.Counter
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		counter = httpmw.NewRedisCounter(redisClient)
	} else {
		log.Println("⚠️  Redis disabled, rate limiting is per instance")
		counter = httpmw.NewMemoryCounter(cache.NewMemoryStore())
	}
	rateLimiter := httpmw.NewRateLimiter(counter, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	authGuard := httpmw.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthHandler(authService, jwtManager, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, transcriptionService, assistantService, logger)
	projectHandler := handler.NewProjectHandler(workspaceService, logger)
	taskHandler := handler.NewTaskHandler(workspaceService, logger)
	memberHandler := handler.NewTeamMemberHandler(workspaceService, logger)
	templateHandler := handler.NewTemplateHandler(workspaceService, logger)
	exportHandler := handler.NewExportHandler(meetingService, export.NewPDFExporter(), export.NewExcelExporter(), logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Setup router
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		authHandler,
		meetingHandler,
		projectHandler,
		taskHandler,
		memberHandler,
		templateHandler,
		exportHandler,
		analyticsHandler,
		authGuard,
		rateLimiter,
		engine.ModelAvailable(),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
