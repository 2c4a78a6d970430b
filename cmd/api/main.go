package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/meeting-assistant-team/meeting-assistant/config"
	_ "github.com/meeting-assistant-team/meeting-assistant/docs" // Swagger docs
	"github.com/meeting-assistant-team/meeting-assistant/internal/actionitem"
	"github.com/meeting-assistant-team/meeting-assistant/internal/httpserver"
	integrationUsecase "github.com/meeting-assistant-team/meeting-assistant/internal/integration/usecase"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session/repository/memory"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session/usecase"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/log"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

// @title       Meeting Assistant API
// @description Real-time meeting transcript analysis: action-item extraction, scheduling, Google Calendar and Slack integrations.
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

	logger.Info(ctx, "Starting Meeting Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction pipeline
	timezone := cfg.Assistant.Timezone
	extractor, err := actionitem.New(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		extractor, _ = actionitem.New(timezone)
	}

	// 4. Session store
	sessionRepo := memory.New(cfg.Assistant.SessionTTL)

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	var calendarReader integrationUsecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = gcal
			calendarReader = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "Calendar sync skipped: GOOGLE_CALENDAR_CREDENTIALS is missing")
	}

	// 6. Slack client (optional)
	var slackClient usecase.SlackNotifier
	var slackReader integrationUsecase.SlackClient
	if cfg.Slack.BotToken != "" {
		sc := slack.New(cfg.Slack.BotToken, cfg.Slack.DefaultChannel)
		slackClient = sc
		slackReader = sc
		logger.Infof(ctx, "✅ Slack notifications initialized (channel %s)", cfg.Slack.DefaultChannel)
	} else {
		logger.Warn(ctx, "Slack notifications skipped: SLACK_BOT_TOKEN is missing")
	}

	// 7. UseCases
	sessionUC := usecase.New(logger, sessionRepo, extractor, calendarClient, slackClient, timezone)
	integrationUC := integrationUsecase.New(logger, calendarReader, slackReader)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		SessionUC:       sessionUC,
		IntegrationUC:   integrationUC,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
