package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Aliya0322/telegram-bot/internal/adapters/llm"
	memstore "github.com/Aliya0322/telegram-bot/internal/adapters/storage/memory"
	"github.com/Aliya0322/telegram-bot/internal/adapters/telegram"
	"github.com/Aliya0322/telegram-bot/internal/app/dialog"
	"github.com/Aliya0322/telegram-bot/internal/config"
	"github.com/Aliya0322/telegram-bot/internal/domain"
	"github.com/Aliya0322/telegram-bot/internal/observability"
	"github.com/Aliya0322/telegram-bot/internal/ops"
)

func main() {
	log := observability.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var gateway domain.ModelGateway
	switch cfg.LLMBackend {
	case config.BackendMock:
		log.Info("using mock model gateway")
		gateway = llm.NewMockClient()
	case config.BackendGemini:
		log.Info("using Gemini model gateway", "model", cfg.ModelName)
		gateway, err = llm.NewGeminiClient(ctx, cfg.APIKey, cfg.ModelName)
		if err != nil {
			log.Error("failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
	default:
		log.Info("using Mistral model gateway", "model", cfg.ModelName)
		gateway = llm.NewMistralClient(cfg.APIKey, cfg.ModelName)
	}

	sessions := memstore.NewSessionStore()
	ledger := memstore.NewQuotaLedger(cfg.MaxRequestsPerDay)

	svc := dialog.NewService(gateway, sessions, ledger, cfg.MessageCharLimit)

	if cfg.OpsPort != "" {
		opsSrv := ops.New(cfg.OpsPort)
		go func() {
			if err := opsSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("ops server failed", "error", err)
			}
		}()
		log.Info("ops server listening", "port", cfg.OpsPort)
	}

	bot, err := telegram.New(cfg.BotToken, svc)
	if err != nil {
		log.Error("failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}

	log.Info("bot started",
		"username", bot.Username(),
		"daily_quota", cfg.MaxRequestsPerDay,
		"char_limit", cfg.MessageCharLimit)

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "error", err)
		os.Exit(1)
	}

	log.Info("bot shut down")
}
