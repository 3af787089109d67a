// Package cli holds the cobra commands of the explorers binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/explorers-mission/internal/config"
	"github.com/aaronzipp/explorers-mission/internal/content"
	"github.com/aaronzipp/explorers-mission/internal/handlers"
	"github.com/aaronzipp/explorers-mission/internal/logger"
	"github.com/aaronzipp/explorers-mission/internal/metrics"
	"github.com/aaronzipp/explorers-mission/internal/models"
	"github.com/aaronzipp/explorers-mission/internal/server"
	"github.com/aaronzipp/explorers-mission/internal/store"
)

// Assets are the files compiled into the binary
type Assets struct {
	Templates fs.FS // contains index.html
	Static    fs.FS // served under /static/
}

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// ServeCmd returns the command that runs the web game
func ServeCmd(assets Assets) *cobra.Command {
	var showQR bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the explorer game over HTTP",
		Long: `Serve the explorer game to browsers on the local network.

Settings come from the environment or a .env file (PORT, LOG_LEVEL,
SESSION_TTL, MAX_SESSIONS, IMAGES_DIR, CONTENT_FILE, PUBLIC_URL).

Examples:
  explorers serve          # listen on :8080
  explorers serve --qr     # also print a QR code for tablets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.Init(logger.Config{
				Level:       cfg.LogLevel,
				Format:      cfg.LogFormat,
				ServiceName: config.ServiceName,
				Version:     cfg.Version,
				Environment: cfg.Environment,
				AddSource:   cfg.IsDev(),
			})

			c, err := loadContent(cfg.ContentFile)
			if err != nil {
				return err
			}
			tmpl, err := template.ParseFS(assets.Templates, "*.html")
			if err != nil {
				return fmt.Errorf("parse templates: %w", err)
			}

			sessions := store.NewSessionStore(cfg.MaxSessions, cfg.SessionTTL, log)
			defer sessions.Close()

			h := &handlers.Context{
				Sessions:     sessions,
				Templates:    tmpl,
				Content:      c,
				Clock:        clockwork.NewRealClock(),
				Observer:     metrics.NewGameCollector(),
				PublicURL:    cfg.URL(),
				SecureCookie: !cfg.IsDev(),
				Logger:       log,
			}
			srv := server.New(cfg.Addr(), server.NewRouter(h, assets.Static, http.Dir(cfg.ImagesDir)))
			srv.OnShutdown(sessions.Close)

			if showQR {
				if err := printQR(cmd, cfg.URL()); err != nil {
					return err
				}
			}
			return run(cmd.Context(), srv, log)
		},
	}

	cmd.Flags().BoolVar(&showQR, "qr", false, "Print a QR code of the game URL")
	return cmd
}

func loadContent(path string) (*models.Content, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

func printQR(cmd *cobra.Command, url string) error {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, qr.ToSmallString(false))
	fmt.Fprintf(out, "Open %s\n", color.New(color.FgGreen, color.Bold).Sprint(url))
	return nil
}

// run serves until SIGINT or SIGTERM, then shuts down gracefully
func run(parent context.Context, srv *server.Server, log *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
