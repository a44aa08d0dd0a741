package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "poke-pets/docs"
	"poke-pets/internal/adapters/auth/sessions"
	mem "poke-pets/internal/adapters/storage/memory"
	pg "poke-pets/internal/adapters/storage/postgres"
	"poke-pets/internal/domain/actions"
	"poke-pets/internal/domain/catalog"
	"poke-pets/internal/domain/inventory"
	"poke-pets/internal/domain/pets"
	"poke-pets/internal/domain/users"
	"poke-pets/internal/middleware"
	"poke-pets/internal/platform/logger"
	"poke-pets/internal/ports/auth"
	"poke-pets/internal/ports/speciesdata"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres directo. Si no, intenta DBDSN.
	DB *sql.DB

	// DSN de Postgres (config DB_DSN). Vacío y DB nil => repos in-memory.
	DBDSN string

	// Opcional: source externo de especies para el seed one-shot.
	// nil => solo se siembran berries y types estáticos.
	Species    speciesdata.Source
	SpeciesMax int

	// Modo dev: no se verifica Bearer; el header X-Debug-User-ID inyecta claims.
	DebugAuth bool

	Logger logger.Logger
}

// NewRouter arma repos, services y rutas, y corre el seed idempotente
// del catálogo. Se invoca una sola vez al arranque.
func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// Sesiones locales: users emite tokens, el middleware los verifica.
	// En modo dev el middleware corre sin verifier (X-Debug-User-ID).
	sessionSvc := sessions.NewService(sessions.DefaultTTL)
	var verifier auth.AuthVerifier
	if !opts.DebugAuth {
		verifier = sessionSvc
	}
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		userRepo    users.Repository
		petRepo     pets.Repository
		invRepo     inventory.Repository
		catalogRepo catalog.Repository
	)

	// Si no te pasan DB explícita, intenta con el DSN de config.
	db := opts.DB
	if db == nil && opts.DBDSN != "" {
		opened, err := pg.Open(opts.DBDSN)
		if err == nil {
			db = opened
		}
	}

	if db != nil {
		if err := pg.EnsureSchema(context.Background(), db); err != nil {
			return nil, err
		}
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		invRepo = pg.NewInventoryRepo(db)
		catalogRepo = pg.NewCatalogRepo(db)
	} else {
		memPets := mem.NewPetsRepo()
		memInv := mem.NewInventoryRepo()
		userRepo = mem.NewUsersRepo(memPets, memInv)
		petRepo = memPets
		invRepo = memInv
		catalogRepo = mem.NewCatalogRepo()
	}

	// Services por módulo
	catalogSvc := catalog.NewService(catalogRepo, log)
	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo, catalogSvc, usersSvc)
	invSvc := inventory.NewService(invRepo)
	actionsSvc := actions.NewService(petsSvc, invSvc, catalogSvc)

	// Seed idempotente del catálogo (berries/types siempre; especies si hay source)
	if err := catalogSvc.SeedIfEmpty(context.Background(), catalog.SeedOptions{
		Species:    opts.Species,
		SpeciesMax: opts.SpeciesMax,
	}); err != nil {
		return nil, err
	}

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, catalogSvc, sessionSvc)
	catalog.RegisterRoutes(r, catalogSvc)
	pets.RegisterRoutes(r, petsSvc, catalogSvc)
	inventory.RegisterRoutes(r, invSvc, catalogSvc)
	actions.RegisterRoutes(r, actionsSvc)

	return r, nil
}
