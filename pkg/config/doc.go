// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optional `.env` files are loaded first (the default `.env` in the
//     working directory when none are named).
//   - The environment is parsed into any Go struct using `env` and
//     `envDefault` field tags.
//   - A prefix may be applied to all variable names so several components can
//     share one environment without clashing.
//
// # Usage
//
//	type EngineConfig struct {
//	    Policy    string `env:"ELEMENT_POLICY" envDefault:"first"`
//	    Separator string `env:"KEY_SEPARATOR" envDefault:"."`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg, config.WithPrefix("PROPTYPES_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly named .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing
//
// `WithEnvironment` parses from a map instead of the process environment,
// which keeps tests independent of each other and of the host machine.
package config
