package http

import (
	"log/slog"
	"net/http"

	"vendas/internal/core"
)

// handleDashboard returns the derived dashboard metrics for the selected
// window. The view is recomputed from the sale collection on every cache
// miss; concurrent misses for the same filter collapse into a single
// computation.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := filter.String()
	if data, ok := s.dashCache.Get(key); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	v, err, shared := s.dashGroup.Do(key, func() (interface{}, error) {
		sales, err := s.ledger.List(r.Context())
		if err != nil {
			return nil, err
		}
		return core.ComputeDashboard(sales, filter, s.clock())
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard computation failed", "filter", key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute dashboard")
		return
	}

	data := v.(core.DashboardData)
	s.dashCache.Set(key, data)
	if shared {
		slog.DebugContext(r.Context(), "Dashboard computation shared", "filter", key)
	}

	writeJSON(w, http.StatusOK, data)
}
