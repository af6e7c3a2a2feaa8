package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcreager/zero-width-watermark-go/watermark"
)

func newExtractCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [TEXT]",
		Short: "Print the payload hidden in a text (reads stdin without TEXT)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.open(stdinIfNoArgs(args))
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
			a.write(res.Payload)
			return nil
		},
	}
}

func newInspectCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [TEXT]",
		Short: "Describe the watermark in a text (reads stdin without TEXT)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.open(stdinIfNoArgs(args))
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "carrier:  %q\n", res.Carrier)
			fmt.Fprintf(a.OutWriter, "payload:  %q\n", res.Payload)
			fmt.Fprintf(a.OutWriter, "length:   %d bits\n", res.Length)
			fmt.Fprintf(a.OutWriter, "symbols:  %d\n", res.Symbols)
			fmt.Fprintf(a.OutWriter, "trailing: %d\n", res.Trailing)
			return nil
		},
	}
}

func newStripCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [TEXT]",
		Short: "Print a text with every watermark symbol removed (reads stdin without TEXT)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readArg(stdinIfNoArgs(args))
			if err != nil {
				return err
			}
			a.write(a.Codec.Strip(text))
			return nil
		},
	}
}

// open extracts from arg, streaming stdin when arg is "-".
func (a *App) open(arg string) (watermark.Result, error) {
	var (
		res watermark.Result
		err error
	)
	if arg == "-" {
		res, err = a.Codec.ExtractReader(a.InReader)
	} else {
		res, err = a.Codec.Open(arg)
	}
	if err != nil {
		return watermark.Result{}, err
	}
	a.Log.Info().
		Uint64("length_bits", res.Length).
		Int("symbols", res.Symbols).
		Int("trailing", res.Trailing).
		Msg("extracted payload")
	if res.Trailing > 0 {
		a.Log.Warn().Int("trailing", res.Trailing).Msg("ignored symbols after the end of the frame")
	}
	return res, nil
}
