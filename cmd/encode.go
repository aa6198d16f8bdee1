package cmd

import (
	"github.com/consensys/gnark/logger"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/sdk"
	"github.com/lido333/openvm/stark"
	"github.com/lido333/openvm/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	encodeCmdInput  string
	encodeCmdOutput string
	encodeCmdFormat string
)

func init() {
	encodeCmd.Flags().StringVar(&encodeCmdInput, "input", "", "verifier input JSON (path or s3:// uri)")
	encodeCmd.Flags().StringVar(&encodeCmdOutput, "output", "", "hint stream destination")
	encodeCmd.Flags().StringVar(&encodeCmdFormat, "format", "", "json or cbor; defaults to the output extension")
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Write the hint stream of a verifier input",
	RunE: func(cmd *cobra.Command, args []string) error {
		if encodeCmdInput == "" || encodeCmdOutput == "" {
			return errors.New("--input and --output are required")
		}
		format, err := streamFormat(encodeCmdFormat, encodeCmdOutput)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		var vi stark.VerifierInput
		if err := store.LoadJSON(ctx, encodeCmdInput, &vi); err != nil {
			return err
		}
		stream, err := sdk.EncodeVerifierInput(vi)
		if err != nil {
			return err
		}
		if err := store.SaveStream(ctx, encodeCmdOutput, stream, format); err != nil {
			return err
		}
		log := logger.Logger()
		log.Info().
			Int("chunks", len(stream)).
			Int("scalars", stream.Len()).
			Str("output", encodeCmdOutput).
			Msg("encoded verifier input")
		return nil
	},
}

// streamFormat resolves --format, falling back to the path's extension and
// then the config file.
func streamFormat(flag, path string) (hints.Format, error) {
	switch {
	case flag != "":
		return hints.ParseFormat(flag)
	case config.Format != "" && hints.FormatFromPath(path) == hints.FormatJSON:
		return hints.ParseFormat(config.Format)
	default:
		return hints.FormatFromPath(path), nil
	}
}
