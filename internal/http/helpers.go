package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vendas/internal/core"
)

// parseFilter extracts the window filter from query parameters, defaulting
// to today. An unrecognized value is a caller error, never "no filter".
func parseFilter(r *http.Request) (core.DateFilter, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("filter"))
	if raw == "" {
		return core.FilterToday, nil
	}
	filter := core.DateFilter(raw)
	if !filter.IsValid() {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownFilter, raw)
	}
	return filter, nil
}

// formatReais formats cents as a Real currency string (e.g., "R$ 12,34").
func formatReais(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	reais := cents / 100
	rem := cents % 100
	s := strconv.FormatInt(reais, 10) + "," + fmt.Sprintf("%02d", rem)
	if neg {
		return "-R$ " + s
	}
	return "R$ " + s
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// decodeJSON reads a request body into dest with a size cap.
func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError sends the uniform error envelope. Persistence failures are
// reported generically; only validation messages reach the client verbatim.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
