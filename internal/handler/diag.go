package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"f1proxy/internal/store"
)

// DiagHandler serves the root banner and the /test status page.
type DiagHandler struct {
	store store.Favorites
}

func NewDiagHandler(s store.Favorites) *DiagHandler {
	return &DiagHandler{store: s}
}

type rootResponse struct {
	Message string `json:"message"`
}

func (h *DiagHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rootResponse{Message: "F1 backend running"})
}

type DiagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

const maxDiagCollections = 10

// Test reports process liveness and a best-effort view of the storage
// connection. It always answers 200: inspection failures degrade to a
// truncated status string instead of an HTTP error.
func (h *DiagHandler) Test(w http.ResponseWriter, r *http.Request) {
	resp := DiagResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store != nil {
		resp.ConnectionStatus = "connected"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		names, err := h.store.Collections(ctx)
		switch {
		case err != nil:
			resp.Database = "connected but error: " + truncate(err.Error(), 50)
		default:
			if len(names) > maxDiagCollections {
				names = names[:maxDiagCollections]
			}
			if names == nil {
				names = []string{}
			}
			resp.Collections = names
			resp.Database = "connected and working: " + h.store.Name()
		}
	}

	// Presence only, never the values.
	resp.DatabaseURL = presence("DATABASE_URL")
	resp.DatabaseName = presence("DATABASE_NAME")

	respondJSON(w, http.StatusOK, resp)
}

func presence(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
