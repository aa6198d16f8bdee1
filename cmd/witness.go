package cmd

import (
	"path/filepath"

	"github.com/consensys/gnark/logger"
	"github.com/lido333/openvm/sdk"
	"github.com/lido333/openvm/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	witnessCmdStream  string
	witnessCmdDataDir string
)

func init() {
	witnessCmd.Flags().StringVar(&witnessCmdStream, "stream", "", "hint stream (path or s3:// uri)")
	witnessCmd.Flags().StringVar(&witnessCmdDataDir, "data", "", "directory for the witness and constraints")
}

var witnessCmd = &cobra.Command{
	Use:   "witness",
	Short: "Replay the verifier input reads over a hint stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := dataDirOr(witnessCmdDataDir)
		if witnessCmdStream == "" || dataDir == "" {
			return errors.New("--stream and --data are required")
		}

		ctx := cmd.Context()
		stream, err := store.LoadStream(ctx, witnessCmdStream)
		if err != nil {
			return err
		}
		trace, err := sdk.WitnessVerifierInput(stream)
		if err != nil {
			return err
		}

		if err := store.SaveJSON(ctx, filepath.Join(dataDir, WITNESS_JSON_FILE), trace.Witness); err != nil {
			return err
		}
		if err := store.SaveJSON(ctx, filepath.Join(dataDir, CONSTRAINTS_JSON_FILE), trace.Constraints); err != nil {
			return err
		}
		log := logger.Logger()
		log.Info().
			Int("vars", len(trace.Witness.Vars)).
			Int("felts", len(trace.Witness.Felts)).
			Int("exts", len(trace.Witness.Exts)).
			Int("constraints", len(trace.Constraints)).
			Msg("wrote witness")
		return nil
	},
}

func dataDirOr(flag string) string {
	if flag != "" {
		return flag
	}
	return config.DataDir
}
