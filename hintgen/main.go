// Hintgen derives circuit variable types and hint codecs for record structs.
//
// Every field of a listed struct is written and read in declaration order.
// Typical use from a package directory:
//
//	//go:generate go run ../hintgen --type=Proof,OpenedValues --output=hints_gen.go
//
// A field tagged `hint:"codec=X,var=Y"` uses X and Y instead of the derived
// codec and variable type; `hint:"-"` leaves the field out.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	typeNames string
	output    string
)

var rootCmd = &cobra.Command{
	Use:   "hintgen [dir]",
	Short: "Generate hint codecs for record structs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if typeNames == "" {
			return errors.New("--type is required")
		}
		names := strings.Split(typeNames, ",")
		out := output
		if out == "" {
			out = strings.ToLower(strings.TrimSpace(names[0])) + "_hints.go"
		}

		g := NewGenerator()
		if err := g.ParseDir(dir, out); err != nil {
			return err
		}
		src, err := g.Generate(names)
		if err != nil {
			return err
		}
		return errors.Wrap(os.WriteFile(filepath.Join(dir, out), src, 0o644), "writing output")
	},
}

func init() {
	rootCmd.Flags().StringVar(&typeNames, "type", "", "comma-separated list of struct names")
	rootCmd.Flags().StringVar(&output, "output", "", "output file name (default <type>_hints.go)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hintgen:", err)
		os.Exit(1)
	}
}
