package logger

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config controls how the diagnostic logger is built. Everything here has a
// sensible default; the CLIs only ever flip Debug.
type Config struct {
	Level       string `json:"level,omitempty" validate:"oneof=debug info warn error"`
	Format      string `json:"format,omitempty" validate:"oneof=json console"`
	TimeField   string `json:"timeField,omitempty"`
	TimeFormat  string `json:"timeFormat,omitempty"`
	ToolName    string `json:"toolName,omitempty"`
	ToolVersion string `json:"toolVersion,omitempty"`
	// Debug forces debug level regardless of Level; wired to the --debug flag.
	Debug bool `json:"debug,omitempty"`
}

// New builds a zerolog logger from the config. Diagnostics always go to
// stderr so stdout stays machine-readable for the report output.
func New(cfg *Config) (logger zerolog.Logger, err error) {
	cfg.setDefaults()

	v := validator.New()
	if err = v.Struct(cfg); err != nil {
		return logger, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = cfg.TimeFormat

	switch cfg.Format {
	case "console":
		writer := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
		logger = zerolog.New(writer).
			With().
			Timestamp().
			Str("tool", cfg.ToolName).
			Logger()
	default:
		logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Str("tool", cfg.ToolName).
			Str("version", cfg.ToolVersion).
			Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return logger, err
	}
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func (c *Config) setDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "15:04:05"
	}
	if c.ToolName == "" {
		c.ToolName = "portal-tools"
	}
	if c.ToolVersion == "" {
		c.ToolVersion = "0.1.0"
	}
}
