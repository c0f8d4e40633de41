package server

import (
	"context"
	"docvault/internal/config"
	"docvault/internal/http/handlers/audit"
	"docvault/internal/http/handlers/compliance"
	"docvault/internal/http/handlers/docs"
	"docvault/internal/http/handlers/health"
	"docvault/internal/http/handlers/session"
	"docvault/internal/http/handlers/user"
	"docvault/internal/http/middleware"
	"docvault/internal/models"
	utils "docvault/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	documentService DocumentService,
	authService AuthService,
	auditService AuditService,
	complianceService ComplianceService,
	healthService HealthService,
	metrics *middleware.RequestCounter,
	gatherer prometheus.Gatherer,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))
	r.Use(metrics.Handler())
	r.Use(middleware.OptionalAuth(log, authService))

	setupRoutes(r, log, documentService, authService, auditService, complianceService, healthService, gatherer)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(
	r *mux.Router,
	log *slog.Logger,
	doc DocumentService,
	auth AuthService,
	aud AuditService,
	comp ComplianceService,
	hs HealthService,
	gatherer prometheus.Gatherer,
) {
	// GET banner
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		health.Root(ctx, log, w, r, hs)
	}).Methods(http.MethodGet)

	// GET health
	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		health.Check(ctx, log, w, r, hs)
	}).Methods(http.MethodGet)

	// GET status
	r.HandleFunc("/api/v1/status", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		health.Status(ctx, log, w, r, hs)
	}).Methods(http.MethodGet)

	// POST encrypt
	r.HandleFunc("/api/v1/encrypt", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Encrypt(ctx, log, w, r, doc)
	}).Methods(http.MethodPost)

	// POST decrypt
	r.HandleFunc("/api/v1/decrypt", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Decrypt(ctx, log, w, r, doc)
	}).Methods(http.MethodPost)

	// GET document by id
	r.HandleFunc("/api/v1/document/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetByID(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// GET document info
	r.HandleFunc("/api/v1/document/{id}/info", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Info(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// GET audit trail
	r.HandleFunc("/api/v1/audit-trail", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		audit.Trail(ctx, log, w, r, aud)
	}).Methods(http.MethodGet)

	// GET compliance summary
	r.HandleFunc("/api/v1/compliance/summary", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		compliance.Summary(ctx, log, w, r, comp, hs)
	}).Methods(http.MethodGet)

	// POST user
	r.HandleFunc("/api/v1/register", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// POST session
	r.HandleFunc("/api/v1/auth", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// DELETE session
	r.HandleFunc("/api/v1/auth/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		token := vars["token"]
		session.Delete(ctx, log, w, r, token, auth)
	}).Methods(http.MethodDelete)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
