package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment variables that override the configured logging settings.
const (
	// EnvLogLevel names a level understood by ParseLevel.
	EnvLogLevel = "ZWM_LOG_LEVEL"
	// EnvLogNoColor is a boolean that turns off console colour.
	EnvLogNoColor = "ZWM_LOG_NOCOLOR"
)

// DefaultLevel keeps the command line quiet unless something goes wrong.
const DefaultLevel = zerolog.WarnLevel

// Config controls the console logger built by New.
type Config struct {
	Level   zerolog.Level
	NoColor bool
}

// DefaultConfig returns the settings for logging to out.  Colour is only
// enabled when out is a terminal.
func DefaultConfig(out io.Writer) Config {
	return Config{
		Level:   DefaultLevel,
		NoColor: !IsTerminal(out),
	}
}

// New returns a console logger writing to out.  Environment variables take
// precedence over cfg.
func New(out io.Writer, cfg Config) zerolog.Logger {
	applyEnvOverrides(&cfg)
	if f, ok := out.(*os.File); ok && !cfg.NoColor {
		out = colorable.NewColorable(f)
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(cfg.Level).With().Timestamp().Logger()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level.  ok is false for empty or
// unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return DefaultLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
