// Hydro Tracker API
//
// REST API for tracking daily fluid intake against a personal goal.
//
//	@title			Hydro Tracker API
//	@version		1.0
//	@description	Track daily fluid intake against a personal goal, with reminders and AI coaching.
//
//	@BasePath	/v1
//
//	@tag.name			profile
//	@tag.description	Profile and goal endpoints
//
//	@tag.name			drinks
//	@tag.description	Drink logging endpoints
//
//	@tag.name			stats
//	@tag.description	Intake statistics endpoints
//
//	@tag.name			analysis
//	@tag.description	AI coaching analysis endpoints
//
//	@tag.name			chat
//	@tag.description	AI coaching chat endpoints
//
//	@tag.name			reminder
//	@tag.description	Hydration reminder endpoints
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/api"
	"github.com/hydrobuddy/hydro-tracker/internal/api/handler"
	"github.com/hydrobuddy/hydro-tracker/internal/api/middleware"
	"github.com/hydrobuddy/hydro-tracker/internal/config"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/langfuse"
	"github.com/hydrobuddy/hydro-tracker/internal/llm"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
	"github.com/hydrobuddy/hydro-tracker/internal/seed"
	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"github.com/hydrobuddy/hydro-tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize OpenTelemetry (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "hydro-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Profile{}, &domain.DrinkLog{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	drinkLogRepo := repository.NewDrinkLogRepository(db)

	// Initialize Langfuse (no-op when not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Load the coach persona from Langfuse, falling back to the baked-in one
	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.LangfuseBaseURL,
		PublicKey:  cfg.LangfusePublicKey,
		SecretKey:  cfg.LangfuseSecretKey,
		PromptName: "hydration-coach",
		SavePath:   "prompts/hydration-coach.txt",
	})
	if err != nil {
		log.Printf("Using built-in coach persona: %v", err)
		systemPrompt = llm.DefaultSystemPrompt
	}

	// Initialize OpenAI coach (may be nil if not configured)
	var coach llm.CoachLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel, systemPrompt); client != nil {
		coach = client
	} else {
		log.Println("Warning: OpenAI API key not configured, coaching endpoints will return degraded results")
	}

	// Initialize services
	profileService := service.NewProfileService(profileRepo)
	drinkLogService := service.NewDrinkLogService(drinkLogRepo)
	statsService := service.NewStatsService(drinkLogRepo, profileRepo)
	analysisService := service.NewAnalysisService(drinkLogRepo, profileRepo, coach, langfuseClient)
	chatService := service.NewChatService(drinkLogRepo, profileRepo, coach)

	// Start the reminder monitor
	monitor := service.NewReminderMonitor(drinkLogRepo, profileRepo, time.Duration(cfg.ReminderTickSeconds)*time.Second)
	monitor.Start(ctx)
	defer monitor.Stop()

	// Initialize Prometheus metrics and the rate limiter janitor
	middleware.InitPrometheus()
	go middleware.CleanupVisitors()

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService)
	drinkLogHandler := handler.NewDrinkLogHandler(drinkLogService)
	statsHandler := handler.NewStatsHandler(statsService)
	analysisHandler := handler.NewAnalysisHandler(analysisService, chatService, langfuseClient)
	reminderHandler := handler.NewReminderHandler(monitor)

	// Setup router
	router := api.NewRouter(
		profileHandler,
		drinkLogHandler,
		statsHandler,
		analysisHandler,
		reminderHandler,
		strings.Split(cfg.AllowedOrigins, ","),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.Setup(),
	}

	// Start server
	go func() {
		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
