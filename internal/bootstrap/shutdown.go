package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/server"
	"github.com/osse101/CaseForge_Go/internal/sse"
	"github.com/osse101/CaseForge_Go/internal/storage"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *sse.Hub
	Store  storage.Store
}

// GracefulShutdown stops components in order:
// 1. Live feed hub (ends streaming responses so the server can drain)
// 2. HTTP server (stop accepting new requests, finish in-flight ones)
// 3. Session storage (after the last write has committed)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgStoppingLiveFeed)
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStorage)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
