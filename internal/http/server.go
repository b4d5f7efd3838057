// Package http exposes the JSON API consumed by the presentation layer.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"vendas/internal/catalog"
	"vendas/internal/core"
	"vendas/internal/ledger"
	"vendas/internal/settings"
	"vendas/internal/storage"
)

type Server struct {
	http.Server

	catalog  *catalog.Service
	ledger   *ledger.Service
	settings *settings.Service
	store    storage.RecordStore
	clock    core.Clock

	rateLimiter *rateLimiter

	// Dashboard responses are cached per filter key and purged on every
	// mutation; concurrent misses collapse into one computation.
	dashCache *lruCache[core.DashboardData]
	dashGroup singleflight.Group

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// Options tunes server behavior; zero values fall back to defaults.
type Options struct {
	Clock     core.Clock
	CacheTTL  time.Duration
	CacheSize int
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, cat *catalog.Service, led *ledger.Service, set *settings.Service, store storage.RecordStore, opts Options) *Server {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 16
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		catalog:          cat,
		ledger:           led,
		settings:         set,
		store:            store,
		clock:            opts.Clock,
		rateLimiter:      newRateLimiter(),
		dashCache:        newLRUCache[core.DashboardData](opts.CacheSize, opts.CacheTTL),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/dashboard", s.withMiddleware(s.handleDashboard))

	mux.HandleFunc("GET /api/products", s.withMiddleware(s.handleListProducts))
	mux.HandleFunc("POST /api/products", s.withMiddleware(s.handleCreateProduct))
	mux.HandleFunc("PATCH /api/products/{id}", s.withMiddleware(s.handleUpdateProduct))
	mux.HandleFunc("DELETE /api/products/{id}", s.withMiddleware(s.handleDeleteProduct))

	mux.HandleFunc("GET /api/sales", s.withMiddleware(s.handleListSales))
	mux.HandleFunc("GET /api/sales/grouped", s.withMiddleware(s.handleGroupedSales))
	mux.HandleFunc("POST /api/sales", s.withMiddleware(s.handleCreateSale))
	mux.HandleFunc("DELETE /api/sales/{id}", s.withMiddleware(s.handleDeleteSale))

	mux.HandleFunc("GET /api/settings", s.withMiddleware(s.handleGetSettings))
	mux.HandleFunc("PUT /api/settings", s.withMiddleware(s.handleUpdateSettings))
	mux.HandleFunc("POST /api/data/clear", s.withMiddleware(s.handleClearData))

	return s
}

// invalidateDerivedViews drops cached dashboard responses. Called after
// every mutation so reads always reflect the current collections.
func (s *Server) invalidateDerivedViews() {
	s.dashCache.Purge()
}

// startCacheCleanup runs periodic cleanup of expired cache entries.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.dashCache.CleanExpired(); cleaned > 0 {
				slog.Debug("Cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.stopCacheCleanup != nil {
			close(s.stopCacheCleanup)
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withMiddleware adds security headers, rate limiting and request logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Rate limit mutations only; dashboard polling stays unthrottled.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Simple in-memory rate limiter
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			lastRequest: now,
			requests:    1,
		}
		return true
	}

	// Reset counter if more than 1 minute has passed
	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true
	}

	// Allow up to 60 mutation requests per minute
	client.requests++
	client.lastRequest = now

	return client.requests <= 60
}

// startCleanup runs periodic cleanup to remove stale client entries
func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// stop gracefully shuts down the rate limiter cleanup goroutine
func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		if rl.stopCleanup != nil {
			close(rl.stopCleanup)
		}
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
