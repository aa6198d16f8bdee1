package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark/logger"
	"github.com/lido333/openvm/server"
	"github.com/lido333/openvm/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	CONSTRAINTS_JSON_FILE = "constraints.json"
	WITNESS_JSON_FILE     = "witness.json"
)

// Config is the optional YAML file passed with --config. Flags that are set
// explicitly win over it.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	DataDir  string        `yaml:"data_dir"`
	Format   string        `yaml:"format"`
	Server   server.Config `yaml:"server"`
}

var (
	configPath string
	logLevel   string
	config     = Config{LogLevel: "info", Server: server.DefaultConfig()}
)

var rootCmd = &cobra.Command{
	Use:           "openvm-hints",
	Short:         "Encode STARK proofs into recursion hint streams",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := loadConfig(cmd.Context(), configPath, &config); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("log-level") {
			config.LogLevel = logLevel
		}
		return setupLogger(config.LogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("OPENVM_HINTS_CONFIG"), "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace, debug, info, warn or error")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(witnessCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadConfig(ctx context.Context, uri string, cfg *Config) error {
	st, err := store.Open(ctx, uri)
	if err != nil {
		return err
	}
	data, err := st.Read(ctx)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	return errors.Wrapf(yaml.Unmarshal(data, cfg), "parsing config %s", uri)
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger.Set(zerolog.New(output).Level(lvl).With().Timestamp().Logger())
	return nil
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
