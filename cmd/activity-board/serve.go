package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpapi "activity-board/internal/http"
	"activity-board/internal/service"
)

func serveCmd(configFile *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the activity board web front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	// Контекст для корректного завершения
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sessions := service.NewSessionStore(a.cfg.Board.SessionTTL, a.cfg.Board.BannerDelay)
	go sessions.Run(ctx, a.cfg.Board.SweepInterval)

	handler := httpapi.NewHandler(a.board, sessions, a.log, httpapi.Options{
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
		SecureCookies:  a.cfg.Server.SecureCookies,
	})

	server := &http.Server{
		Addr:    a.cfg.Server.Addr,
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("api", a.cfg.API.BaseURL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Error("server error", slog.Any("err", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		a.log.Error("server shutdown error", slog.Any("err", err))
		return err
	}

	a.log.Info("server stopped")
	return nil
}
