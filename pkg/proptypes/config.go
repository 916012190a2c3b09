package proptypes

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/propcheck/pkg/config"
	"github.com/dmitrymomot/propcheck/pkg/logger"
)

// ErrInvalidConfig is returned when a Config field holds an unsupported value.
var ErrInvalidConfig = errors.New("invalid proptypes configuration")

// Config holds the engine settings that can be supplied through the
// environment.
type Config struct {
	ElementPolicy  string `env:"ELEMENT_POLICY" envDefault:"first"`
	KeySeparator   string `env:"KEY_SEPARATOR" envDefault:"."`
	FreezeRegistry bool   `env:"FREEZE_REGISTRY" envDefault:"true"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`
	// LogAttrs are static attributes added to every record, e.g. "service:api,env:prod".
	LogAttrs map[string]string `env:"LOG_ATTRS"`
}

// EnvPrefix is prepended to every Config variable, e.g. PROPTYPES_LOG_LEVEL.
const EnvPrefix = "PROPTYPES_"

// LoadConfig reads Config from the environment and the given .env files.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix), config.WithEnvFiles(envFiles...)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Validator from cfg. Explicit options are applied
// after the configured ones and win. Every invalid field is reported.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	policy, policyErr := ParseElementPolicy(cfg.ElementPolicy)

	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	if levelErr != nil {
		levelErr = errors.Join(ErrInvalidConfig, levelErr)
	}

	format := logger.Format(cfg.LogFormat)
	var formatErr error
	if format != logger.FormatJSON && format != logger.FormatText {
		formatErr = errorf(ErrInvalidConfig, "log format %q", cfg.LogFormat)
	}

	if err := errors.Join(policyErr, levelErr, formatErr); err != nil {
		return nil, err
	}

	attrs := make([]slog.Attr, 0, len(cfg.LogAttrs))
	for _, k := range slices.Sorted(maps.Keys(cfg.LogAttrs)) {
		attrs = append(attrs, slog.String(k, cfg.LogAttrs[k]))
	}

	registry := NewRegistry()
	if cfg.FreezeRegistry {
		registry.Freeze()
	}

	base := []Option{
		WithRegistry(registry),
		WithKeySeparator(cfg.KeySeparator),
		WithElementPolicy(policy),
		WithLogger(logger.New(logger.WithLevel(level), logger.WithFormat(format), logger.WithAttr(attrs...))),
	}
	return New(append(base, opts...)...), nil
}
