package app

import (
	"log/slog"
	"os"

	"quickchat/internal/domain"
	"quickchat/internal/logging"
	"quickchat/internal/services/auth"
	"quickchat/internal/services/message"
	"quickchat/internal/store"
)

// App bundles the stores and services for the CLI.
type App struct {
	Accounts domain.AccountService
	Registry domain.MessageRegistry
	Messages domain.MessageStore
	Log      logging.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	logOut := cfg.LogOut
	if logOut == nil {
		logOut = os.Stderr
	}
	log := logging.NewTextLogger(logOut, slog.LevelInfo)

	messageStore := store.NewMessageFileStore(cfg.Home)
	registry := message.NewRegistry(messageStore, log)
	accounts := auth.New()

	return &App{
		Accounts: accounts,
		Registry: registry,
		Messages: messageStore,
		Log:      log,
	}
}
