package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "PROPTYPES_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing.
// Files that are listed explicitly must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		for _, f := range files {
			if f != "" {
				o.files = append(o.files, f)
			}
		}
	}
}

// WithEnvironment parses from vars instead of the process environment.
// No .env file is read in that case.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses environment variables into the struct pointed to by v.
//
// Without WithEnvFiles the default .env file in the working directory is
// loaded when present. Variables already set in the process win over values
// from .env files.
//
// Example:
//
//	type EngineConfig struct {
//		Policy string `env:"ELEMENT_POLICY" envDefault:"first"`
//	}
//
//	var cfg EngineConfig
//	err := config.Load(&cfg, config.WithPrefix("PROPTYPES_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environment == nil {
		if err := loadEnvFiles(o.files); err != nil {
			return err
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		// The default .env file is optional.
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				return errors.Join(ErrLoadingEnvFile, err)
			}
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
