package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcreager/zero-width-watermark-go/internal/config"
)

func newEmbedCommand(a *App) *cobra.Command {
	var carrier, payload string

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Hide a payload inside a carrier text",
		Example: `  zwm embed --carrier "hello world" --payload "secret"
  cat letter.txt | zwm embed --carrier - --payload "copy 42" > marked.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if carrier == "-" && payload == "-" {
				return errors.New("only one of --carrier and --payload can be read from stdin")
			}
			c, err := a.readArg(carrier)
			if err != nil {
				return err
			}
			p, err := a.readArg(payload)
			if err != nil {
				return err
			}

			if a.Cfg.CarrierPolicy == config.PolicyStrip && a.Codec.Contains(c) {
				a.Log.Warn().Msg("removing existing watermark symbols from carrier")
				c = a.Codec.Strip(c)
			}

			encoded, err := a.Codec.Embed(c, p)
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			a.Log.Info().
				Int("carrier_bytes", len(c)).
				Int("payload_bytes", len(p)).
				Int("encoded_bytes", len(encoded)).
				Msg("embedded payload")
			a.write(encoded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&carrier, "carrier", "c", "", "visible text to hide the payload in, or - for stdin")
	cmd.Flags().StringVarP(&payload, "payload", "p", "", "text to hide, or - for stdin")
	_ = cmd.MarkFlagRequired("carrier")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}
