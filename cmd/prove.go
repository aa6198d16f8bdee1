package cmd

import (
	"os"
	"path/filepath"

	"github.com/lido333/openvm/circuit"
	"github.com/lido333/openvm/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	buildCmdDataDir   string
	proveCmdDataDir   string
	proveCmdProofPath string
)

func init() {
	buildCmd.Flags().StringVar(&buildCmdDataDir, "data", "", "directory holding the witness and constraints")
	proveCmd.Flags().StringVar(&proveCmdDataDir, "data", "", "directory holding the witness and constraints")
	proveCmd.Flags().StringVar(&proveCmdProofPath, "proof", "", "proof destination (path or s3:// uri)")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the hint circuit and write its plonk keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := dataDirOr(buildCmdDataDir)
		if dataDir == "" {
			return errors.New("--data is required")
		}
		witnessInput, constraints, err := loadTrace(dataDir)
		if err != nil {
			return err
		}
		a, err := circuit.Build(witnessInput, constraints)
		if err != nil {
			return err
		}
		return a.WriteTo(dataDir)
	},
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Prove the hint circuit over a witness",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := dataDirOr(proveCmdDataDir)
		if dataDir == "" || proveCmdProofPath == "" {
			return errors.New("--data and --proof are required")
		}
		witnessInput, constraints, err := loadTrace(dataDir)
		if err != nil {
			return err
		}

		// Keys written by build are reused; otherwise set up from scratch.
		a, err := circuit.ReadArtifacts(dataDir)
		if err != nil {
			if a, err = circuit.Build(witnessInput, constraints); err != nil {
				return err
			}
		}
		proof, err := a.Prove(witnessInput)
		if err != nil {
			return err
		}
		return store.SaveJSON(cmd.Context(), proveCmdProofPath, proof)
	},
}

// loadTrace reads the files written by the witness command. WITNESS_JSON and
// CONSTRAINTS_JSON override their locations.
func loadTrace(dataDir string) (circuit.WitnessInput, []circuit.Constraint, error) {
	witnessPath := envOr("WITNESS_JSON", filepath.Join(dataDir, WITNESS_JSON_FILE))
	constraintsPath := envOr("CONSTRAINTS_JSON", filepath.Join(dataDir, CONSTRAINTS_JSON_FILE))

	wf, err := os.Open(witnessPath)
	if err != nil {
		return circuit.WitnessInput{}, nil, errors.Wrap(err, "opening witness")
	}
	defer wf.Close()
	witnessInput, err := circuit.LoadWitnessInput(wf)
	if err != nil {
		return circuit.WitnessInput{}, nil, err
	}

	cf, err := os.Open(constraintsPath)
	if err != nil {
		return circuit.WitnessInput{}, nil, errors.Wrap(err, "opening constraints")
	}
	defer cf.Close()
	constraints, err := circuit.LoadConstraints(cf)
	if err != nil {
		return circuit.WitnessInput{}, nil, err
	}
	return witnessInput, constraints, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
