package config

import (
	"io"
	"os"
	"strings"

	"frame-bridge/internal/logger"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type Config struct {
	LogLevel  logger.LogLevel
	LogFormat string
}

// Load reads FRAMEBRIDGE_LOG_LEVEL (falling back to LOG_LEVEL, with DEBUG=1
// forcing debug) and FRAMEBRIDGE_LOG_FORMAT.
func Load() Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) Config {
	cfg := Config{
		LogLevel:  logger.InfoLevel,
		LogFormat: FormatJSON,
	}

	level := getenv("FRAMEBRIDGE_LOG_LEVEL")
	if level == "" {
		level = getenv("LOG_LEVEL")
	}
	switch {
	case level != "":
		cfg.LogLevel = logger.ParseLevel(level)
	case getenv("DEBUG") == "1":
		cfg.LogLevel = logger.DebugLevel
	}

	if strings.EqualFold(getenv("FRAMEBRIDGE_LOG_FORMAT"), FormatConsole) {
		cfg.LogFormat = FormatConsole
	}

	return cfg
}

func (c Config) NewLogger(w io.Writer, component string) logger.Logger {
	if c.LogFormat == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return logger.NewZerolog(w, c.LogLevel, component)
}
