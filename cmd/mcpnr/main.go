// Command mcpnr runs the place-and-route core over a JSON netlist
// stand-in (real Yosys protobuf netlist and technology-library parsing are
// thin, swappable adapters outside this module's scope).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Fatal("mcpnr: fatal error")
		os.Exit(1)
	}
}

// version is stamped into every placed design's Creator field
// ("Placed by mcpnr-go <version>, ...") as well as cobra's --version flag,
// so the two never drift apart.
const version = "0.1.0"

func newRootCommand() *cobra.Command {
	var techlibDir string

	cmd := &cobra.Command{
		Use:     "mcpnr INPUT OUTPUT",
		Short:   "Place and route a synthesized netlist onto a voxel grid",
		Version: version,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaceAndRoute(args[0], args[1], techlibDir)
		},
	}

	cmd.Flags().StringVar(&techlibDir, "techlib", "", "technology library directory")
	_ = cmd.MarkFlagRequired("techlib")

	return cmd
}
