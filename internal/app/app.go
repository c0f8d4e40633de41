package app

import (
	"context"
	"docvault/internal/cache/redis"
	"docvault/internal/config"
	"docvault/internal/crypto/aesgcm"
	"docvault/internal/dbs/postgres"
	"docvault/internal/http/middleware"
	cacherepo "docvault/internal/repositories/cache"
	cachedocsrepo "docvault/internal/repositories/cache/docs"
	noopcache "docvault/internal/repositories/cache/noop"
	cachesessionrepo "docvault/internal/repositories/cache/session"
	auditrepo "docvault/internal/repositories/db/audit"
	compliancerepo "docvault/internal/repositories/db/compliance"
	documentrepo "docvault/internal/repositories/db/document"
	userrepo "docvault/internal/repositories/db/user"
	filerepo "docvault/internal/repositories/storage/file"
	auditservice "docvault/internal/services/audit"
	authservice "docvault/internal/services/auth"
	complianceservice "docvault/internal/services/compliance"
	documentservice "docvault/internal/services/document"
	healthservice "docvault/internal/services/health"
	userservice "docvault/internal/services/user"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	AuthService       AuthService
	DocumentService   DocumentService
	AuditService      AuditService
	ComplianceService ComplianceService
	HealthService     HealthService
	Metrics           *middleware.RequestCounter
	Registry          *prometheus.Registry
}

// NewApp wires the whole service. A failed database or cache connection is
// not fatal: the app starts degraded and falls back to file storage.
func NewApp(ctx context.Context, log *slog.Logger, dbCfg config.DB, cacheCfg config.Cache, fileStorageCfg config.FileStorage) (*App, error) {
	cryptoErr := aesgcm.SelfTest()
	if cryptoErr != nil {
		log.Error("encryption self test failed", slog.String("error", cryptoErr.Error()))
	}

	var (
		docRepo    documentservice.DocumentRepository
		compWriter documentservice.ComplianceWriter
		auditRepo  auditservice.AuditRepository
		docCounter complianceservice.DocumentCounter
		compRepo   complianceservice.ComplianceRepository
		userAdder  authservice.UserAdder
		userProv   authservice.UserProvider
		dbPinger   healthservice.DBPinger
	)

	db, err := postgres.New(ctx, postgres.Config{
		URL:      dbCfg.URL,
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB})
	if err != nil {
		log.Warn("failed connect to db, starting in degraded mode", slog.String("error", err.Error()))
	} else {
		documentRepo := documentrepo.NewRepository(db)
		complianceRepo := compliancerepo.NewRepository(db)

		docRepo = documentRepo
		compWriter = complianceRepo
		auditRepo = auditrepo.NewRepository(db)
		docCounter = documentRepo
		compRepo = complianceRepo

		userRepo := userrepo.NewRepository(db)
		userService := userservice.New(log, userRepo, userRepo)
		userAdder = userService
		userProv = userService

		dbPinger = db
	}

	var (
		cache       cacherepo.Cache = noopcache.New()
		cachePinger healthservice.CachePinger
	)

	if cacheCfg.Enabled {
		redisClient, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
		if err != nil {
			log.Warn("failed connect to cache, continuing without it", slog.String("error", err.Error()))
		} else {
			cache = redisClient
			cachePinger = redisClient
		}
	}

	fileStorage := filerepo.NewRepository(fileStorageCfg.Path)

	sessionCacheRepo := cachesessionrepo.New(cache, cacheCfg.SessionTTL)

	documentCacheRepo := cachedocsrepo.New(cache, cacheCfg.DocumentsTTL)

	authService := authservice.New(log, userAdder, userProv, sessionCacheRepo)

	auditService := auditservice.New(log, auditRepo)

	complianceService := complianceservice.New(log, cryptoErr == nil, docCounter, compRepo, fileStorage)

	documentService := documentservice.New(log, docRepo, compWriter, complianceService, auditService, documentCacheRepo, fileStorage)

	healthService := healthservice.New(log, cryptoErr, dbPinger, cachePinger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := middleware.NewRequestCounter(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}

	return &App{
		AuthService:       authService,
		DocumentService:   documentService,
		AuditService:      auditService,
		ComplianceService: complianceService,
		HealthService:     healthService,
		Metrics:           metrics,
		Registry:          registry,
	}, nil
}
