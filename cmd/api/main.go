package main

import (
	"log"
	"net/http"
	"time"

	"poke-pets/internal/adapters/speciesdata/pokeapi"
	"poke-pets/internal/platform/config"
	"poke-pets/internal/platform/httpclient"
	"poke-pets/internal/platform/logger"
	"poke-pets/internal/ports/speciesdata"
	"poke-pets/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Source de especies solo si el import está habilitado; sin source el
	// seed igual carga berries y type profiles estáticos.
	var species speciesdata.Source
	if cfg.SpeciesImportEnabled {
		client, err := pokeapi.NewClient(cfg.SpeciesAPIBaseURL, httpclient.DefaultTimeout)
		if err != nil {
			log.Fatalf("pokeapi client error: %v", err)
		}
		species = client
	}

	r, err := router.NewRouter(router.Options{
		DBDSN:      cfg.DBDSN,
		Species:    species,
		SpeciesMax: cfg.SpeciesImportMax,
		DebugAuth:  cfg.AuthDebug,
		Logger:     lg,
	})
	if err != nil {
		log.Fatalf("router error: %v", err)
	}

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
