package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"

	"github.com/dcreager/zero-width-watermark-go/internal/logging"
	"github.com/dcreager/zero-width-watermark-go/watermark"
)

// CarrierPolicy decides what embed does with a carrier that already contains
// alphabet symbols.
type CarrierPolicy string

const (
	// PolicyReject fails the embed.
	PolicyReject CarrierPolicy = "reject"
	// PolicyStrip removes the existing symbols before embedding.
	PolicyStrip CarrierPolicy = "strip"
)

const defaultPath = "~/.zwm/config.toml"

// Config is the resolved command line configuration.
type Config struct {
	Alphabet      watermark.Alphabet
	LengthBits    int
	CarrierPolicy CarrierPolicy
	LogLevel      string
}

// config.toml key mapping.
type fileConfig struct {
	Zero          string `toml:"zero"`
	One           string `toml:"one"`
	LengthBits    int    `toml:"length_bits"`
	CarrierPolicy string `toml:"carrier_policy"`
	LogLevel      string `toml:"log_level"`
}

// Default returns the configuration used when no file sets a key.
func Default() Config {
	return Config{
		Alphabet:      watermark.DefaultAlphabet,
		LengthBits:    watermark.DefaultLengthBits,
		CarrierPolicy: PolicyReject,
		LogLevel:      "warn",
	}
}

// DefaultPath returns the expanded location of the default config file.
func DefaultPath() (string, error) {
	path, err := homedir.Expand(defaultPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Clean(path), nil
}

// Load reads the config file at path on top of the defaults.  An empty path
// means the default location, which is allowed to be missing.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("zero") {
		if cfg.Alphabet.Zero, err = ParseCodePoint(raw.Zero); err != nil {
			return Config{}, fmt.Errorf("config (%s): zero: %w", path, err)
		}
	}
	if meta.IsDefined("one") {
		if cfg.Alphabet.One, err = ParseCodePoint(raw.One); err != nil {
			return Config{}, fmt.Errorf("config (%s): one: %w", path, err)
		}
	}
	if meta.IsDefined("length_bits") {
		cfg.LengthBits = raw.LengthBits
	}
	if meta.IsDefined("carrier_policy") {
		cfg.CarrierPolicy = CarrierPolicy(strings.ToLower(strings.TrimSpace(raw.CarrierPolicy)))
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks the carrier policy, the log level, and that the alphabet and
// length prefix width make a usable codec.
func Validate(cfg Config) error {
	switch cfg.CarrierPolicy {
	case PolicyReject, PolicyStrip:
	default:
		return fmt.Errorf("carrier_policy must be %q or %q, got %q", PolicyReject, PolicyStrip, cfg.CarrierPolicy)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	_, err := cfg.Codec()
	return err
}

// Codec builds the watermark codec described by the config.
func (cfg Config) Codec() (*watermark.Codec, error) {
	return watermark.New(
		watermark.WithAlphabet(cfg.Alphabet),
		watermark.WithLengthBits(cfg.LengthBits),
	)
}

// ParseCodePoint accepts "U+200B", "0x200b" or "200b".
func ParseCodePoint(raw string) (rune, error) {
	s := strings.TrimSpace(raw)
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		s = strings.TrimPrefix(s, prefix)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > 0x10ffff {
		return 0, fmt.Errorf("invalid code point %q", raw)
	}
	return rune(v), nil
}
