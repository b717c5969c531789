package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"leadcomposer/internal/config"
	"leadcomposer/internal/handlers"
	"leadcomposer/internal/tui"
	"leadcomposer/internal/whatsapp"
	"leadcomposer/pkg/logging"
)

func loadConfig(dbPath string) *config.Config {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func newServeCmd(dbPath *string) *cobra.Command {
	var port string
	var withWhatsApp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lead form and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*dbPath)
			if port != "" {
				cfg.Port = port
			}
			if cmd.Flags().Changed("whatsapp") {
				cfg.WhatsAppEnabled = withWhatsApp
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	cmd.Flags().BoolVar(&withWhatsApp, "whatsapp", false, "Enable direct sending through a linked WhatsApp account")
	return cmd
}

func serve(cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel)
	if !cfg.EnvFileLoaded {
		logger.Debug().Msg("no .env file found, using environment only")
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ws := handlers.NewWorkspace(a.list, a.catalog, a.editor, cfg.ShortcutName)
	httpLogger := logger.Component("http")
	routerCfg := handlers.RouterConfig{
		Logger:    httpLogger,
		Leads:     handlers.NewLeadHandler(ws, httpLogger),
		Templates: handlers.NewTemplateHandler(ws, httpLogger),
		Web:       handlers.NewWebHandler(cfg.WhatsAppEnabled),
	}

	if cfg.WhatsAppEnabled {
		waClient, err := whatsapp.NewClient(cfg.WhatsAppSessionDB, logger.Component("whatsapp"))
		if err != nil {
			return err
		}
		defer waClient.Disconnect()

		qrHandler := handlers.NewQRHandler()
		waClient.SetQRHandler(qrHandler.SetQR)
		waClient.SetQRClearHandler(qrHandler.ClearQR)

		if waClient.HasSession() {
			if err := waClient.Connect(); err != nil {
				logger.Warn().Err(err).Msg("failed to restore whatsapp session")
			}
		}

		routerCfg.WhatsApp = handlers.NewWhatsAppHandler(ws, waClient, httpLogger)
		routerCfg.QR = qrHandler
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handlers.NewRouter(routerCfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Bool("whatsapp", cfg.WhatsAppEnabled).
			Msg("starting leadcomposer server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info().Msg("server exited")
	return nil
}

func newTUICmd(dbPath *string) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit leads in a terminal form and copy links to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*dbPath)

			// The form owns the terminal, so logs go to a file or nowhere.
			logger := logging.Nop()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logger = logging.NewWithWriter(f, cfg.LogLevel)
			}

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.Run(a.list, a.catalog, a.editor, cfg.ShortcutName)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	return cmd
}
