package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/server"
)

func TestDeleteThroughService(t *testing.T) {
	var gotMethod, gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotKey = r.Method, r.URL.EscapedPath(), r.Header.Get(server.HeaderAPIKey)
		if gotKey != "secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Run("sends an authenticated delete", func(t *testing.T) {
		err := deleteThroughService(context.Background(), srv.URL+"/", "secret", "player 1")

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/api/v1/admin/sessions/player%201", gotPath)
		assert.Equal(t, "secret", gotKey)
	})

	t.Run("reports the service answer", func(t *testing.T) {
		err := deleteThroughService(context.Background(), srv.URL, "wrong", "player-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("requires a key", func(t *testing.T) {
		err := deleteThroughService(context.Background(), srv.URL, "", "player-1")

		assert.ErrorContains(t, err, "ADMIN_API_KEY")
	})
}
