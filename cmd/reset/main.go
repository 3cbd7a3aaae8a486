package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/CaseForge_Go/internal/bootstrap"
	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/server"
)

const requestTimeout = 10 * time.Second

// reset deletes one session so the next request for it starts over with the
// starting balance. By default it asks the running service to do it, which
// also drops the session from the service's cache. With -offline it deletes
// straight from the store; only do that while the app is stopped, or the
// app will write its cached copy back on the next action.
func main() {
	sessionID := flag.String("session", "", "session id to delete")
	baseURL := flag.String("url", "", "base URL of the running service (default http://localhost:$PORT)")
	offline := flag.Bool("offline", false, "delete from the store directly; the app must not be running")
	flag.Parse()

	if *sessionID == "" {
		log.Fatal("Usage: reset -session <id> [-url http://host:port | -offline]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *baseURL == "" {
		*baseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	if err := run(cfg, *sessionID, *baseURL, *offline); err != nil {
		log.Fatalf("Failed to delete session %s: %v", *sessionID, err)
	}
	log.Printf("Session %s deleted.\n", *sessionID)
}

func run(cfg *config.Config, sessionID, baseURL string, offline bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if offline {
		return deleteFromStore(ctx, cfg, sessionID)
	}
	return deleteThroughService(ctx, baseURL, cfg.AdminAPIKey, sessionID)
}

func deleteThroughService(ctx context.Context, baseURL, apiKey, sessionID string) error {
	if apiKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is not set; the admin route refuses every request without it")
	}

	endpoint := strings.TrimRight(baseURL, "/") + "/api/v1/admin/sessions/" + url.PathEscape(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(server.HeaderAPIKey, apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("service unreachable (use -offline if it is stopped): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("service answered %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}

func deleteFromStore(ctx context.Context, cfg *config.Config, sessionID string) error {
	if cfg.StorageBackend == config.StorageMemory {
		return fmt.Errorf("STORAGE_BACKEND is memory; nothing is persisted outside the running app")
	}

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	return store.Delete(ctx, sessionID)
}
