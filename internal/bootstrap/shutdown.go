package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is an HTTP server that can be stopped gracefully
type Stopper interface {
	Stop(ctx context.Context) error
}

// Shutdowner is a background worker that can be shut down gracefully
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    Stopper
	Refresher Shutdowner
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then waits for the catalog refresh worker.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Refresher != nil {
		if err := components.Refresher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRefresherShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
