package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/bot"
	"github.com/suzi-bot/suzi/internal/config"
	"github.com/suzi-bot/suzi/internal/llm"
	"github.com/suzi-bot/suzi/internal/logging"
	"github.com/suzi-bot/suzi/internal/steam"
	"github.com/suzi-bot/suzi/internal/store"
	"github.com/suzi-bot/suzi/internal/titles"
	"github.com/suzi-bot/suzi/internal/xp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment")
	}

	cfg, err := config.Load(config.NewViper())
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	recordStore := openStores(cfg, logger)

	locks := store.NewUserLocks()
	services := bot.Services{
		Tracker:    achievements.NewTracker(recordStore, locks, logger),
		Ledger:     xp.NewLedger(recordStore, locks, logger),
		Titles:     titles.NewBridge(recordStore, logger),
		Steam:      steam.NewClient(cfg.SteamAPIKey),
		SteamCache: steam.NewRefreshCache(5 * time.Minute),
		LLM:        llm.New(cfg.OpenAIToken, cfg.OpenAIMaxTokens, cfg.OpenAITemperature, 30*time.Second),
	}
	stopJanitor := services.SteamCache.StartJanitor(0)

	suzi, err := bot.New(&cfg, services, logger)
	if err != nil {
		logger.Fatal("error creating bot", zap.Error(err))
	}

	if err := suzi.Start(); err != nil {
		logger.Fatal("error starting bot", zap.Error(err))
	}

	bot.SetupCloseHandler(func() error {
		logger.Info("shutting down bot")
		stopJanitor()
		if err := suzi.Stop(); err != nil {
			return err
		}
		return recordStore.Close()
	})

	logger.Info("bot is now running, press CTRL-C to exit")
	select {}
}

// openStores wires the dual-backend record store. The SQLite backend is
// optional: if it cannot be opened (or no path is configured) the bot runs
// on the file backend alone with no behavior change visible to callers.
func openStores(cfg config.Config, logger *zap.Logger) *store.Fallback {
	fileStore, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("error opening file store", zap.Error(err))
	}

	var primary store.RecordStore
	if cfg.DatabasePath != "" {
		sqlStore, err := store.OpenSQLStore(cfg.DatabasePath, logger)
		if err != nil {
			logger.Warn("sqlite unavailable, running file-only", zap.Error(err))
		} else {
			primary = sqlStore
		}
	}

	return store.NewFallback(primary, fileStore, logger)
}
