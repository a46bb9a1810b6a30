package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"lost-pet-alerts/internal/adapters/email/sendgrid"
	"lost-pet-alerts/internal/adapters/geocode/nominatim"
	kvrepos "lost-pet-alerts/internal/adapters/storage/kv"
	mem "lost-pet-alerts/internal/adapters/storage/memory"
	pg "lost-pet-alerts/internal/adapters/storage/postgres"
	"lost-pet-alerts/internal/adapters/storage/redisstore"
	"lost-pet-alerts/internal/config"
	"lost-pet-alerts/internal/domain/notifications"
	"lost-pet-alerts/internal/domain/reports"
	"lost-pet-alerts/internal/domain/verification"
	"lost-pet-alerts/internal/metrics"
	"lost-pet-alerts/internal/middleware"
	"lost-pet-alerts/internal/platform/logger"
	"lost-pet-alerts/internal/ports/geocode"
	"lost-pet-alerts/internal/ports/kvstore"
)

type Options struct {
	Config config.Config
	Log    *logger.Logger

	// Store permite inyectar un backend explícito (tests). Si es nil se
	// elige por config: DB_DSN → Postgres, REDIS_ADDR → Redis, sino memoria.
	Store kvstore.Store

	// Dispatcher permite inyectar un doble de email (tests). Si es nil se
	// construye el cliente SendGrid desde config.
	Dispatcher verification.Dispatcher

	// Geocoder opcional; nil desactiva la resolución de direcciones.
	Geocoder geocode.Geocoder

	// Registry opcional para métricas; nil crea uno propio.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	store := opts.Store
	if store == nil {
		var err error
		store, err = storeFromConfig(opts.Config)
		if err != nil {
			return nil, err
		}
	}

	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		sg, err := sendgrid.NewClient(opts.Config.SendGridAPIURL, opts.Config.SendGridAPIKey, opts.Log)
		if err != nil {
			return nil, err
		}
		dispatcher = sg
	}

	geocoder := opts.Geocoder
	if geocoder == nil {
		nm, err := nominatim.NewClient("")
		if err != nil {
			return nil, err
		}
		geocoder = nm
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	collector := metrics.NewCollector(registry)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))

	// Repos sobre el namespace clave/valor compartido
	reportsRepo := kvrepos.NewReportsRepo(store)
	notifsRepo := kvrepos.NewNotificationsRepo(store)
	slotRepo := kvrepos.NewVerificationRepo(store)

	// Services por módulo
	reportsSvc := reports.NewService(reportsRepo, geocoder, opts.Log)
	notifsSvc := notifications.NewService(notifsRepo, opts.Log)
	verifySvc := verification.NewService(slotRepo, dispatcher, opts.Log)

	sendLimiter := middleware.NewRateLimiter(
		opts.Config.VerificationRatePerMinute,
		opts.Config.VerificationBurst,
	)

	// Rutas por módulo
	reports.RegisterRoutes(r, reportsSvc, notifsSvc, collector)
	notifications.RegisterRoutes(r, notifsSvc, collector)
	verification.RegisterRoutes(r, verifySvc, collector, sendLimiter.Handler)

	return r, nil
}

func storeFromConfig(cfg config.Config) (kvstore.Store, error) {
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		store := pg.NewStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	}

	if cfg.RedisAddr != "" {
		store := redisstore.NewStore(cfg.RedisAddr)
		if err := store.Ping(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	}

	return mem.NewStore(), nil
}
