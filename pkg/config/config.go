package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Validator is implemented by configs that check their own invariants after parsing.
type Validator interface {
	Validate() error
}

// Load parses environment variables into a new T according to its env tags.
// The first call reads a .env file from the working directory if one exists;
// variables already set in the environment take precedence over it.
// If *T implements Validator, Validate runs after parsing.
//
//	type Config struct {
//		HTTP httpserver.Config
//		Check livecheck.Config
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	return parse[T](env.Options{})
}

// LoadFrom parses variables from the given map only, ignoring the process
// environment. It is meant for tests.
func LoadFrom[T any](vars map[string]string) (T, error) {
	return parse[T](env.Options{Environment: vars})
}

// LoadFiles reads the given dotenv files, without overriding variables that
// are already set, then behaves like Load.
func LoadFiles[T any](files ...string) (T, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			var zero T
			return zero, errors.Join(ErrReadingDotenv, err)
		}
	}
	return parse[T](env.Options{})
}

// MustLoad is Load that panics on failure.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

func parse[T any](opts env.Options) (T, error) {
	cfg, err := env.ParseAsWithOptions[T](opts)
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			var zero T
			return zero, errors.Join(ErrInvalidConfig, err)
		}
	}
	return cfg, nil
}
