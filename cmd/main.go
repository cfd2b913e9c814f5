package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/assistant"
	"github.com/agrocycle/agrocycle/internal/config"
	"github.com/agrocycle/agrocycle/internal/logger"
	"github.com/agrocycle/agrocycle/internal/model"
	"github.com/agrocycle/agrocycle/internal/repository/bolt"
	"github.com/agrocycle/agrocycle/internal/service"
	"github.com/agrocycle/agrocycle/internal/token"
	"github.com/agrocycle/agrocycle/internal/ui"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to open local store", "error", err)
	}
	defer db.Close()

	if err := db.Seed(); err != nil {
		logger.Fatal("failed to seed local store", "error", err)
	}

	userRepo := bolt.NewUserRepository(db)
	farmerRepo := bolt.NewFarmerRepository(db, userRepo)
	listingRepo := bolt.NewListingRepository(db, userRepo)
	sessionRepo := bolt.NewSessionRepository(db)
	tokenManager := token.NewJWT(cfg.Session.Secret)

	authService := service.NewAuth(userRepo, sessionRepo, tokenManager, logger)
	marketService := service.NewMarket(listingRepo, farmerRepo, logger, cfg.Market.LogisticsFee)

	var completer assistant.Completer
	if cfg.Gemini.APIKey != "" {
		gemini, err := assistant.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Fatal("failed to create assistant client", "error", err)
		}
		completer = gemini
	} else {
		logger.Info("no assistant API key configured, assistant runs in offline mode")
		completer = assistant.Offline{}
	}

	var restored *model.User
	if user, ok := authService.RestoreSession(ctx); ok {
		logger.Info("restored session", "user", user.ID, "role", user.Role)
		restored = &user
	}

	app, err := ui.NewApp(ctx, authService, marketService, completer, logger, restored)
	if err != nil {
		logger.Fatal("failed to initialize interface", "error", err)
	}

	logAppVersion()

	program := tea.NewProgram(app, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Fatal("interface terminated", "error", err)
	}

	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
