// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 so each
// configuration struct is declared with `env` tags, parsed once per process,
// and shared by every consumer:
//
//	type ToastConfig struct {
//		MaxVisible      int           `env:"TOAST_MAX_VISIBLE" envDefault:"5"`
//		DefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"5s"`
//	}
//
//	var cfg ToastConfig
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is applied automatically on first
// load; LoadEnv layers additional files on top, with later files winning.
package config
