package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
	"github.com/stitchdesk/stitchdesk/internal/client/config"
	"github.com/stitchdesk/stitchdesk/internal/client/services"
	"github.com/stitchdesk/stitchdesk/internal/client/token"
	"github.com/stitchdesk/stitchdesk/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	tokens    token.Store
	api       *api.Client
	auth      services.AuthService
	clients   services.ClientService
	orders    services.OrderService
	accounts  services.AccountService
	dropdowns services.DropdownService
	userName  string
	Mode      Mode
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewTintLogger(os.Stderr, parseLevel(c.LogLevel))

	tokens, err := token.NewFileStore(c.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("token store init error: %w", err)
	}

	apiClient := api.New(api.Options{
		BaseURL:      c.BaseAPIURL,
		AssetBaseURL: c.BaseAssetURL,
		Timeout:      c.RequestTimeout,
	}, tokens, log)

	return &App{
		config:    c,
		log:       log,
		tokens:    tokens,
		api:       apiClient,
		auth:      services.NewAuthService(apiClient, tokens, log),
		clients:   services.NewClientService(apiClient),
		orders:    services.NewOrderService(apiClient),
		accounts:  services.NewAccountService(apiClient),
		dropdowns: services.NewDropdownService(apiClient),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.tokens.Get()
	return ok
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher probes the backend health endpoint on the given
// interval and flips Mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
