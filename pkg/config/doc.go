// Package config loads typed configuration from environment variables with
// github.com/caarlos0/env and optional .env files with github.com/joho/godotenv.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		HTTP     httpserver.Config
//	}
//
//	cfg, err := config.Load[Config]()
//
// Nested structs are parsed with their own tags, so package configs such as
// httpserver.Config and livecheck.Config compose into one application config.
package config
