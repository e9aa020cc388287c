// Package main запускает фронтенд доски активностей и консольный клиент к API записи.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"activity-board/internal/config"
	"activity-board/internal/repository"
	"activity-board/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "activity-board",
		Short:         "Activity sign-up board: web front end and terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (default: ./configs/config.yaml or ./config.yaml)")

	root.AddCommand(
		serveCmd(&configFile),
		listCmd(&configFile),
		signupCmd(&configFile),
		removeCmd(&configFile),
	)
	return root
}

// app — общие зависимости команд.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	board *service.BoardService
}

func newApp(configFile string) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := repository.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout})
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	repo := repository.NewActivityRepo(client)

	return &app{
		cfg:   cfg,
		log:   logger,
		board: service.NewBoardService(repo, logger),
	}, nil
}
