package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/net/netutil"

	"github.com/medflow/medflow/config"
	httpx "github.com/medflow/medflow/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server. The listener is capped
// by HTTPConfig.MaxConns so a connection flood degrades into queueing rather
// than unbounded goroutines. Returns the server instance for graceful
// shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, fmt.Errorf("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	services := httpx.RouterServices{
		Auth:           cfg.Services.Auth,
		Appointments:   cfg.Services.Appointments,
		MedicalRecords: cfg.Services.MedicalRecords,
		LeaveRequests:  cfg.Services.LeaveRequests,
		Insurance:      cfg.Services.Insurance,
		Dashboard:      cfg.Services.Dashboard,
		Staff:          cfg.Services.Staff,
		Notices:        cfg.Services.Notices,
		CookieDomain:   cfg.Config.HTTP.CookieDomain,
		Logger:         logger,
	}

	handler := httpx.NewRouter(services)

	httpCfg := cfg.Config.HTTP
	addr := httpCfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	listener = netutil.LimitListener(listener, httpCfg.MaxConns)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", addr, "max_conns", httpCfg.MaxConns)
		if serveErr := server.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", serveErr)
		}
	}()

	return server, nil
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	HTTP    config.HTTPConfig
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
