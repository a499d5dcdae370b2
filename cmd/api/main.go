package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mindgarden-backend/config"
	_ "mindgarden-backend/docs" // Swagger docs
	"mindgarden-backend/internal/httpserver"
	"mindgarden-backend/internal/middleware"
	taskHTTP "mindgarden-backend/internal/task/delivery/http"
	"mindgarden-backend/internal/task/repository"
	supabaseRepo "mindgarden-backend/internal/task/repository/supabase"
	"mindgarden-backend/internal/task/usecase"
	"mindgarden-backend/pkg/datemath"
	"mindgarden-backend/pkg/gcalendar"
	"mindgarden-backend/pkg/log"
	"mindgarden-backend/pkg/speech"
	"mindgarden-backend/pkg/taskextract"
	"mindgarden-backend/pkg/textclean"
)

// @title       MindGarden API
// @description Task extraction backend: cleans free-form text and voice notes into structured tasks with due dates, tags and priorities.
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

	logger.Info(ctx, "Starting MindGarden backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Text pipeline
	cleaner := textclean.New()
	if cfg.Cleaner.RulesPath != "" {
		extra, rulesErr := textclean.LoadRulesFile(cfg.Cleaner.RulesPath)
		if rulesErr != nil {
			logger.Warnf(ctx, "Failed to load cleaner rules from %s: %v", cfg.Cleaner.RulesPath, rulesErr)
		} else if cleaner, rulesErr = textclean.NewWithRules(extra); rulesErr != nil {
			logger.Warnf(ctx, "Invalid cleaner rules in %s, using built-ins: %v", cfg.Cleaner.RulesPath, rulesErr)
			cleaner = textclean.New()
		} else {
			logger.Infof(ctx, "Loaded %d extra cleaner rules from %s", len(extra), cfg.Cleaner.RulesPath)
		}
	}

	extractor := taskextract.New()

	dateParser, dtErr := datemath.NewParser(cfg.Extractor.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extractor.Timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 4. Integrations (each optional, pipeline degrades without them)
	var taskRepo repository.TaskRepository
	if cfg.Supabase.URL != "" && cfg.Supabase.ServiceKey != "" {
		supabaseClient := supabaseRepo.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		taskRepo = supabaseRepo.New(supabaseClient, cfg.Supabase.TasksTable, logger)
		logger.Info(ctx, "Supabase persistence initialized")
	} else {
		logger.Warn(ctx, "Supabase not configured, tasks will not be persisted")
	}

	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	var speechClient speech.ISpeech
	if cfg.Speech.APIKey != "" {
		stt, sttErr := speech.New(cfg.Speech.APIKey)
		if sttErr != nil {
			logger.Warnf(ctx, "Speech-to-text not available (optional): %v", sttErr)
		} else {
			speechClient = stt
			logger.Info(ctx, "Speech-to-text initialized")
		}
	} else {
		logger.Warn(ctx, "Speech API key not configured, voice notes disabled")
	}

	// 5. Task domain
	taskUC := usecase.New(
		logger,
		cleaner,
		extractor,
		taskRepo,
		calendarClient,
		speechClient,
		cfg.GoogleCalendar.CalendarID,
		dateParser,
	)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
