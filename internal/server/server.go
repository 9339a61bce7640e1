package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mingleton/dawson-rp/internal/account"
	"github.com/mingleton/dawson-rp/internal/airdrop"
	"github.com/mingleton/dawson-rp/internal/catalog"
	"github.com/mingleton/dawson-rp/internal/database"
	"github.com/mingleton/dawson-rp/internal/handler"
	"github.com/mingleton/dawson-rp/internal/inventory"
	"github.com/mingleton/dawson-rp/internal/ledger"
	"github.com/mingleton/dawson-rp/internal/logger"
	"github.com/mingleton/dawson-rp/internal/metrics"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	accountService   account.Service
	ledgerService    ledger.Service
	inventoryService inventory.Service
	airdropService   airdrop.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, accountService account.Service, ledgerService ledger.Service, inventoryService inventory.Service, airdropService airdrop.Service, cat *catalog.Catalog) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Account routes
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", handler.HandleCreateAccount(accountService))
			r.Get("/{id}", handler.HandleGetAccount(accountService, inventoryService))
			r.Get("/{id}/balance", handler.HandleGetBalance(ledgerService))
			r.Post("/{id}/credit", handler.HandleCredit(ledgerService))
			r.Post("/{id}/debit", handler.HandleDebit(ledgerService))
			r.Post("/{id}/health", handler.HandleAdjustHealth(accountService))
		})

		r.Post("/transfer", handler.HandleTransfer(ledgerService))
		r.Post("/gamble", handler.HandleGamble(ledgerService))
		r.Get("/leaderboard", handler.HandleLeaderboard(accountService))

		// Item routes
		r.Get("/inventory", handler.HandleGetInventory(inventoryService))
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handler.HandleCreateItems(inventoryService))
			r.Get("/{id}", handler.HandleGetItem(inventoryService))
			r.Delete("/{id}", handler.HandleDeleteItem(inventoryService))
			r.Post("/{id}/transfer", handler.HandleTransferItem(inventoryService))
			r.Post("/{id}/equip", handler.HandleEquipItem(inventoryService))
			r.Post("/{id}/unequip", handler.HandleUnequipItem(inventoryService))
			r.Post("/{id}/drop", handler.HandleDropItem(inventoryService))
		})

		// Catalog routes (read-only reference data)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/types", handler.HandleGetTypes(cat))
			r.Get("/types/{id}", handler.HandleGetType(cat))
			r.Get("/rarities", handler.HandleGetRarities(cat))
			r.Get("/rarities/{id}", handler.HandleGetRarity(cat))
		})

		// Airdrop routes
		r.Route("/airdrop", func(r chi.Router) {
			r.Get("/", handler.HandleAirdropStatus(airdropService))
			r.Post("/start", handler.HandleAirdropStart(airdropService))
			r.Post("/claim", handler.HandleAirdropClaim(airdropService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		accountService:   accountService,
		ledgerService:    ledgerService,
		inventoryService: inventoryService,
		airdropService:   airdropService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
