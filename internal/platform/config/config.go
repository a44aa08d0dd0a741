package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config concentra toda la configuración del servicio (solo env vars).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DSN de Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string `env:"DB_DSN"`

	// Modo dev: el middleware no verifica tokens y el header
	// X-Debug-User-ID inyecta el usuario. Nunca en producción.
	AuthDebug bool `env:"AUTH_DEBUG" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"poke-pets"`

	// Base URL del catálogo externo de especies (PokeAPI).
	SpeciesAPIBaseURL string `env:"SPECIES_API_BASE_URL" envDefault:"https://pokeapi.co/api/v2"`

	// Cuántas especies importar si la tabla está vacía (Gen 1).
	SpeciesImportMax int `env:"SPECIES_IMPORT_MAX" envDefault:"150"`

	// Si false, no se llama al API externo aunque el catálogo de especies esté vacío
	// (útil en dev/tests; berries y types se siembran igual desde datos estáticos).
	SpeciesImportEnabled bool `env:"SPECIES_IMPORT_ENABLED" envDefault:"false"`
}

// Load parsea Config desde el entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
