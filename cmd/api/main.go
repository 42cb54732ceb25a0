package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayplanner/config"
	_ "dayplanner/docs" // Swagger docs
	"dayplanner/internal/httpserver"
	"dayplanner/internal/planner/repository/memory"
	"dayplanner/internal/planner/usecase"
	"dayplanner/pkg/datemath"
	"dayplanner/pkg/gcalendar"
	"dayplanner/pkg/llmprovider"
	"dayplanner/pkg/log"
)

// @title       Day Planner API
// @description Chat-driven daily task planner with deterministic commands and a language-model fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.Planner.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.Calendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Planner domain
	taskRepo := memory.New()
	plannerUC := usecase.New(
		logger,
		taskRepo,
		manager,
		calendarClient,
		cfg.Calendar.CalendarID,
		dateMathParser,
		cfg.Planner.MaxSessions,
		parseDurationOr(cfg.Planner.SessionTTL, 30*time.Minute),
		cfg.Planner.SummaryMaxTasks,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		PlannerUC:   plannerUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
