package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/dcreager/zero-width-watermark-go/internal/config"
	"github.com/dcreager/zero-width-watermark-go/internal/logging"
	"github.com/dcreager/zero-width-watermark-go/watermark"
)

// App holds the state shared by every subcommand.
type App struct {
	CfgFile string

	OutWriter io.Writer
	ErrWriter io.Writer
	InReader  io.Reader

	Cfg   config.Config
	Codec *watermark.Codec
	Log   zerolog.Logger
}

// Init loads the config file and builds the codec and logger.
func (a *App) Init() error {
	cfg, err := config.Load(a.CfgFile)
	if err != nil {
		return err
	}
	codec, err := cfg.Codec()
	if err != nil {
		return err
	}
	a.Cfg = cfg
	a.Codec = codec

	logCfg := logging.DefaultConfig(a.ErrWriter)
	lvl, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	logCfg.Level = lvl
	a.Log = logging.New(a.ErrWriter, logCfg)
	a.Log.Debug().
		Str("zero", fmt.Sprintf("%U", codec.Alphabet().Zero)).
		Str("one", fmt.Sprintf("%U", codec.Alphabet().One)).
		Int("length_bits", codec.LengthBits()).
		Str("carrier_policy", string(cfg.CarrierPolicy)).
		Msg("codec ready")
	return nil
}

// readArg returns arg itself, or all of stdin when arg is "-".
func (a *App) readArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(a.InReader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// write prints a result.  A newline is added only for terminals, so that piped
// output is byte for byte what the codec produced.
func (a *App) write(s string) {
	fmt.Fprint(a.OutWriter, s)
	if logging.IsTerminal(a.OutWriter) {
		fmt.Fprintln(a.OutWriter)
	}
}

func stdinIfNoArgs(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
