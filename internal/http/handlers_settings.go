package http

import (
	"log/slog"
	"net/http"
)

type updateSettingsRequest struct {
	DarkMode bool `json:"darkMode"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.settings.Get(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := s.settings.SetDarkMode(r.Context(), req.DarkMode)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleClearData wipes every persisted collection and resets the service
// caches so the next read observes the empty store.
func (s *Server) handleClearData(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearAll(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Failed to clear data", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear data")
		return
	}

	s.catalog.Reset()
	s.ledger.Reset()
	s.invalidateDerivedViews()

	slog.InfoContext(r.Context(), "All data cleared")
	w.WriteHeader(http.StatusNoContent)
}
