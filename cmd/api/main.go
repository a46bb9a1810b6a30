package main

import (
	"net/http"
	"time"

	"lost-pet-alerts/internal/config"
	"lost-pet-alerts/internal/platform/logger"
	"lost-pet-alerts/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	r, err := router.NewRouter(router.Options{
		Config: cfg,
		Log:    log,
	})
	if err != nil {
		log.Error("router init failed", "err", err.Error())
		return
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "err", err.Error())
	}
}
