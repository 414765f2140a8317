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
	"github.com/labstack/echo/v4/middleware"

	"github.com/orator-app/speech-coach/internal/adapter/handler"
	"github.com/orator-app/speech-coach/internal/infrastructure/render"
	"github.com/orator-app/speech-coach/internal/infrastructure/storage"
	"github.com/orator-app/speech-coach/internal/usecase/analysis"
	pkgai "github.com/orator-app/speech-coach/pkg/ai"
	"github.com/orator-app/speech-coach/pkg/config"
	pkgvalidator "github.com/orator-app/speech-coach/pkg/validator"
)

func main() {
	// Load configuration; missing engine credentials are fatal here
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

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Cap multipart upload size
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxUploadMB)))

	// Initialize engine clients
	log.Println("🤖 Initializing engine clients...")
	humeClient := pkgai.NewHumeClient(&cfg.Hume)
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	// Initialize temporary artifact store
	store, err := storage.NewLocalStore(cfg.Analysis.TempAudioDir, cfg.Analysis.WorkspacePrefix, logger)
	if err != nil {
		log.Fatalf("Failed to initialize artifact store: %v", err)
	}

	// Assemble the analysis pipeline
	log.Println("⚙️  Assembling analysis pipeline...")
	emotionAdapter := analysis.NewEmotionAdapter(humeClient, cfg.Analysis.DominantTopK, logger)
	transcriptionAdapter := analysis.NewTranscriptionAdapter(asmClient, cfg.Analysis.Language, logger)
	feedbackSynthesizer := analysis.NewFeedbackSynthesizer(groqClient, logger)
	analysisService := analysis.NewService(
		store,
		emotionAdapter,
		transcriptionAdapter,
		feedbackSynthesizer,
		cfg.Analysis.FillerLexicon,
		logger,
	)

	// Initialize handlers
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)
	slidesHandler := handler.NewSlidesHandler(render.NewPDFRenderer(logger), logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisHandler, slidesHandler)
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
