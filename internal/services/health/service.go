package healthservice

import (
	"context"
	"log/slog"
)

const pkg = "healthService/"

type Status struct {
	CryptoAvailable   bool
	CryptoError       string
	DatabaseAvailable bool
	CacheAvailable    bool
}

// Operational reports whether the service can encrypt at all. A down
// database only degrades it (file fallback still works).
func (s Status) Operational() bool {
	return s.CryptoAvailable
}

type HealthService struct {
	log       *slog.Logger
	cryptoErr error
	db        DBPinger
	cache     CachePinger
}

// New builds the health service. db may be nil when the service started
// without a database connection.
func New(log *slog.Logger, cryptoErr error, db DBPinger, cache CachePinger) *HealthService {
	return &HealthService{
		log:       log,
		cryptoErr: cryptoErr,
		db:        db,
		cache:     cache,
	}
}

func (hs *HealthService) Check(ctx context.Context) Status {
	op := pkg + "Check"

	log := hs.log.With(slog.String("op", op))

	status := Status{
		CryptoAvailable: hs.cryptoErr == nil,
	}

	if hs.cryptoErr != nil {
		status.CryptoError = hs.cryptoErr.Error()
	}

	if hs.db != nil {
		if err := hs.db.PingContext(ctx); err != nil {
			log.Warn("database ping failed", slog.String("error", err.Error()))
		} else {
			status.DatabaseAvailable = true
		}
	}

	if hs.cache != nil {
		if err := hs.cache.Ping(ctx); err != nil {
			log.Warn("cache ping failed", slog.String("error", err.Error()))
		} else {
			status.CacheAvailable = true
		}
	}

	return status
}
