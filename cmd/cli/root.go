// Package cli holds the hotelfront command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X hotelfront/cmd/cli.version=...".
var version = "dev"

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hotelfront",
		Short:         "Hotel website gateway",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCommand(),
		newCacheCommand(),
		newAckCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version)
		},
	}
}
