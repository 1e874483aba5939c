package cmd

import (
	"github.com/mcpconf/cli/internal/browse"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	browseCmd = &cobra.Command{
		GroupID: groupClients,
		Use:     "browse",
		Short:   "Pick a client and an action interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse.Run(cmd.Context(), afero.NewOsFs(), newLauncher())
		},
	}
)

func init() {
	rootCmd.AddCommand(browseCmd)
}
