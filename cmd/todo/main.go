// Package main implements the todo service, a small HTTP API for creating,
// listing, updating and deleting todos held in memory.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│                todo                     │
//	├─────────────────────────────────────────┤
//	│  HTTP API (httpapi):                    │
//	│    GET    /             - Health        │
//	│    GET    /todos        - List          │
//	│    POST   /todos        - Create        │
//	│    GET    /todos/{id}   - Get           │
//	│    PUT    /todos/{id}   - Update title  │
//	│    DELETE /todos/{id}   - Delete        │
//	├─────────────────────────────────────────┤
//	│  Components:                            │
//	│    TodoService       - Not-found rules  │
//	│    MemoryRepository  - RWMutex store    │
//	└─────────────────────────────────────────┘
//
// Configuration (see internal/config):
//   - HOST: Listen host (default: "127.0.0.1")
//   - PORT: Listen port (default: 8080)
//   - LOG_LEVEL: Log verbosity (default: "info")
//   - LOG_FORMAT: text, json or logfmt (default: "text")
//   - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: "5s")
//   - TODO_CONFIG: Optional YAML or TOML config file
//
// A .env file in the working directory is loaded before the environment is read.
//
// Example usage:
//
//	PORT=8080 LOG_LEVEL=debug ./todo
//
//	curl -X POST localhost:8080/todos -d '{"title":"Buy milk"}'
//	curl localhost:8080/todos
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dreamware/todo/internal/config"
	"github.com/dreamware/todo/internal/httpapi"
	"github.com/dreamware/todo/internal/logging"
	"github.com/dreamware/todo/internal/service"
	"github.com/dreamware/todo/internal/storage"
)

// logFatal is a variable to allow mocking log.Fatal in tests.
var logFatal = log.Fatal

func main() {
	cfg, err := config.Load()
	if err != nil {
		logFatal("load config", "err", err)
		return
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logFatal("create logger", "err", err)
		return
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logFatal("listen", "addr", cfg.Addr(), "err", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, ln, newServer(logger), cfg.ShutdownTimeout, logger); err != nil {
		logFatal("serve", "err", err)
	}
}

// newServer wires repository, service and router into an http.Server.
// The store starts empty and lives as long as the server.
func newServer(logger *log.Logger) *http.Server {
	repo := storage.NewMemoryRepository()
	svc := service.New(repo, logger)

	return &http.Server{
		Handler:           httpapi.NewRouter(svc, logger),
		ReadHeaderTimeout: 5 * time.Second, // Prevent slowloris attacks
	}
}

// serve runs srv on ln until ctx is cancelled, then shuts it down gracefully
// within timeout. It returns nil after a clean shutdown.
func serve(ctx context.Context, ln net.Listener, srv *http.Server, timeout time.Duration, logger *log.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
		return err
	}
	logger.Info("stopped")
	return nil
}
