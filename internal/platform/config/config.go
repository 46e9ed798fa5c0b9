package config

import "github.com/caarlos0/env/v11"

// Config del servicio, cargada desde variables de entorno.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	DBDSN    string `env:"DB_DSN"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
